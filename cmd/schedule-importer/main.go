package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"fairway/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// JSONSeason is the season file layout:
//
//	{
//	  "name": "2025 Season",
//	  "year": 2025,
//	  "tournaments": [
//	    {
//	      "name": "The Players Championship",
//	      "start_date": "2025-03-13",
//	      "end_date": "2025-03-16",
//	      "start_time": "07:40",
//	      "time_zone": "America/New_York",
//	      "is_major": false,
//	      "week_number": 1,
//	      "allow_duplicate_picks": false
//	    }
//	  ]
//	}
type JSONSeason struct {
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Tournaments []JSONTournament `json:"tournaments"`
}

type JSONTournament struct {
	Name                string  `json:"name"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	StartTime           *string `json:"start_time"`
	TimeZone            string  `json:"time_zone"`
	IsMajor             bool    `json:"is_major"`
	WeekNumber          int     `json:"week_number"`
	AllowDuplicatePicks bool    `json:"allow_duplicate_picks"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: schedule-importer <season.json>")
		os.Exit(1)
	}
	jsonPath := os.Args[1]

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Tournament{}, &models.Schedule{}, &models.ScheduleTournament{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		log.Fatal("Failed to read JSON file:", err)
	}

	var season JSONSeason
	if err := json.Unmarshal(data, &season); err != nil {
		log.Fatal("Failed to parse JSON:", err)
	}

	fmt.Printf("Found %d tournaments for %q (%d)\n\n", len(season.Tournaments), season.Name, season.Year)

	err = db.Transaction(func(tx *gorm.DB) error {
		schedule := models.Schedule{Name: season.Name, Year: season.Year}
		if err := tx.Create(&schedule).Error; err != nil {
			return err
		}

		for _, jt := range season.Tournaments {
			fmt.Printf("Processing: week %2d  %s\n", jt.WeekNumber, jt.Name)

			startDate, err := parseDate(jt.StartDate)
			if err != nil {
				return fmt.Errorf("%s: bad start_date: %w", jt.Name, err)
			}
			endDate, err := parseDate(jt.EndDate)
			if err != nil {
				return fmt.Errorf("%s: bad end_date: %w", jt.Name, err)
			}

			tournament := models.Tournament{
				Name:      jt.Name,
				Year:      season.Year,
				StartDate: startDate,
				EndDate:   endDate,
				StartTime: jt.StartTime,
				TimeZone:  jt.TimeZone,
				IsMajor:   jt.IsMajor,
			}
			if err := tx.Create(&tournament).Error; err != nil {
				return err
			}

			entry := models.ScheduleTournament{
				ScheduleID:          schedule.ID,
				TournamentID:        tournament.ID,
				WeekNumber:          jt.WeekNumber,
				AllowDuplicatePicks: jt.AllowDuplicatePicks,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		fmt.Printf("\n✓ Schedule %q created with id %d\n", schedule.Name, schedule.ID)
		return nil
	})
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	var count int64
	db.Model(&models.ScheduleTournament{}).Count(&count)
	fmt.Printf("✓ Total schedule entries in database: %d\n", count)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
