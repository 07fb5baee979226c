package slides

import (
	"fmt"
	"sort"
	"strings"

	"github.com/splcricket/auction-hall/internal/domain/auction"
	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/roster"
)

// Build projects roster state into the ordered show sequence: one welcome
// label, then per age-group bracket in fixed order a bracket label followed
// by player cards in ascending position. Reserved and removed entries never
// appear; brackets without eligible entries are skipped entirely.
//
// The result is stateless and restartable: callers rebuild rather than
// mutate.
func Build(a auction.Auction, entries []roster.Entry, playersByID map[string]player.Player) []Slide {
	out := make([]Slide, 0, len(entries)+len(player.AgeGroupOrder)+1)
	seq := 1

	out = append(out, Slide{
		ID:    fmt.Sprintf("intro-%d", seq),
		Kind:  KindLabel,
		Label: a.WelcomeText,
	})
	seq++

	for _, ageGroup := range player.AgeGroupOrder {
		bracket := make([]roster.Entry, 0, len(entries))
		for _, e := range entries {
			if e.IsReserved || e.IsRemoved || e.AgeGroup != ageGroup {
				continue
			}
			bracket = append(bracket, e)
		}
		if len(bracket) == 0 {
			continue
		}

		sort.Slice(bracket, func(i, j int) bool {
			return bracket[i].PositionNumber < bracket[j].PositionNumber
		})

		out = append(out, Slide{
			ID:    fmt.Sprintf("header-%s-%d", headerSlug(ageGroup), seq),
			Kind:  KindLabel,
			Label: strings.ToUpper(string(ageGroup)),
		})
		seq++

		for _, e := range bracket {
			p := playersByID[e.PlayerID]
			photoURL := strings.TrimSpace(p.PhotoURL)
			if photoURL == "" {
				photoURL = FallbackPhotoURL
			}

			out = append(out, Slide{
				ID:         fmt.Sprintf("%d", seq),
				Kind:       KindPlayer,
				PlayerName: p.FullName,
				Speciality: string(p.Role),
				AgeGroup:   string(e.AgeGroup),
				PhotoURL:   photoURL,
				IsCurrent:  e.IsCurrent,
			})
			seq++
		}
	}

	return out
}

func headerSlug(ageGroup player.AgeGroup) string {
	return strings.ReplaceAll(strings.ToLower(string(ageGroup)), " ", "-")
}
