package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"fairway/models"
	"fairway/services"
)

// Checks a season JSON file before import: the runtime trusts week
// numbers to increase with start instants and zone names to resolve,
// so this is where those assumptions get verified.

type jsonSeason struct {
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Tournaments []jsonTournament `json:"tournaments"`
}

type jsonTournament struct {
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
		fmt.Println("usage: schedule-lint <season.json>")
		os.Exit(1)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: read error: %v\n", path, err)
		os.Exit(1)
	}

	var season jsonSeason
	if err := json.Unmarshal(data, &season); err != nil {
		fmt.Printf("%s: parse error: %v\n", path, err)
		os.Exit(1)
	}

	bad := 0
	report := func(format string, args ...interface{}) {
		fmt.Printf(path+": "+format+"\n", args...)
		bad++
	}

	windows := services.NewWindowResolver(services.SystemClock{})

	type stop struct {
		week  int
		name  string
		start time.Time
	}
	stops := make([]stop, 0, len(season.Tournaments))
	weeks := make(map[int]string)

	for _, jt := range season.Tournaments {
		startDate, err := time.Parse("2006-01-02", jt.StartDate)
		if err != nil {
			report("%s: bad start_date %q", jt.Name, jt.StartDate)
			continue
		}
		endDate, err := time.Parse("2006-01-02", jt.EndDate)
		if err != nil {
			report("%s: bad end_date %q", jt.Name, jt.EndDate)
			continue
		}
		if endDate.Before(startDate) {
			report("%s: end_date %s before start_date %s", jt.Name, jt.EndDate, jt.StartDate)
		}

		if _, err := services.LoadZone(jt.TimeZone); err != nil {
			report("%s: unresolvable time zone %q", jt.Name, jt.TimeZone)
			continue
		}

		if prior, dup := weeks[jt.WeekNumber]; dup {
			report("%s: week %d already used by %s", jt.Name, jt.WeekNumber, prior)
		}
		weeks[jt.WeekNumber] = jt.Name

		t := models.Tournament{
			Name:      jt.Name,
			Year:      season.Year,
			StartDate: startDate,
			EndDate:   endDate,
			StartTime: jt.StartTime,
			TimeZone:  jt.TimeZone,
		}

		start, err := windows.StartInstant(&t)
		if err != nil {
			report("%s: cannot resolve start instant: %v", jt.Name, err)
			continue
		}

		open, close, err := windows.PickWindow(&t)
		if err != nil {
			report("%s: cannot resolve pick window: %v", jt.Name, err)
			continue
		}
		if !open.Before(close) {
			report("%s: pick window never opens (open %s, close %s)", jt.Name, open, close)
		}

		stops = append(stops, stop{week: jt.WeekNumber, name: jt.Name, start: start})
	}

	sort.Slice(stops, func(i, j int) bool { return stops[i].week < stops[j].week })
	for i := 1; i < len(stops); i++ {
		if !stops[i].start.After(stops[i-1].start) {
			report("%s (week %d) does not start after %s (week %d)",
				stops[i].name, stops[i].week, stops[i-1].name, stops[i-1].week)
		}
	}

	if bad == 0 {
		fmt.Printf("%s: OK (%d tournaments)\n", path, len(stops))
		return
	}
	os.Exit(1)
}
