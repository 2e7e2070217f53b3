// handlers/league_picks_test.go
package handlers

import (
	"net/http/httptest"
	"testing"

	"fairway/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMemberships struct {
	infos []services.MembershipInfo
}

func (s stubMemberships) Memberships(userID uint) ([]services.MembershipInfo, error) {
	return s.infos, nil
}

// Every league-scoped read must 404 for callers outside the league,
// before any service is consulted.
func TestLeagueRoutes_HiddenFromNonMembers(t *testing.T) {
	memberSource = stubMemberships{infos: []services.MembershipInfo{{LeagueID: 2}}}

	routes := map[string]fiber.Handler{
		"schedule":      GetSchedule,
		"current-picks": GetLeagueCurrentPicks,
		"scoreboard":    GetScoreboard,
	}

	for name, handler := range routes {
		t.Run(name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/api/leagues/:leagueId/"+name, func(c *fiber.Ctx) error {
				c.Locals("userID", uint(3))
				return handler(c)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/api/leagues/1/"+name, nil))
			require.NoError(t, err)
			assert.Equal(t, 404, resp.StatusCode)
		})
	}
}
