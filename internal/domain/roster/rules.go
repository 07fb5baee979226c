package roster

import (
	"errors"
	"fmt"
	"sort"

	"github.com/splcricket/auction-hall/internal/domain/player"
	"github.com/splcricket/auction-hall/internal/domain/team"
)

var (
	ErrInvalidSalePoints  = errors.New("sold points must be a positive number")
	ErrReservedPlayer     = errors.New("reserved players cannot be sold")
	ErrInsufficientPoints = errors.New("insufficient team points")
)

// RosterTarget is how many players every team aims to buy. It is a display
// target, not a hard cap: PlayersRemaining goes negative on an over-buy.
const RosterTarget = 11

// SentinelPosition is the out-of-range slot a moving entry parks in during
// the three-step swap. It must never collide with a live position.
const SentinelPosition = -999

// MoveDirection selects a neighbour for a position swap.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// NextPosition returns the position for a new entry in the bracket:
// max over non-removed entries plus one, or 1 for an empty bracket.
func NextPosition(entries []Entry, ageGroup player.AgeGroup) int {
	max := 0
	for _, e := range entries {
		if e.IsRemoved || e.AgeGroup != ageGroup {
			continue
		}
		if e.PositionNumber > max {
			max = e.PositionNumber
		}
	}

	return max + 1
}

// PositionUpdate is one write of the swap sequence.
type PositionUpdate struct {
	PlayerID string
	Position int
}

// PlanSwap computes the write sequence that exchanges the entry at
// fromPosition with its neighbour in the given direction. The sequence is
// three steps because position_number is unique per bracket: the mover parks
// in the sentinel slot first, the neighbour takes the vacated position, and
// the mover lands in the neighbour's original position.
//
// A move off either edge of the bracket returns ok=false (a no-op, not an
// error). A failure after step one leaves the sentinel visible in storage;
// the caller's recovery is a reload, never a compensating write.
func PlanSwap(entries []Entry, ageGroup player.AgeGroup, fromPosition int, direction MoveDirection) ([]PositionUpdate, bool) {
	bracket := make([]Entry, 0, len(entries))
	maxPosition := 0
	for _, e := range entries {
		if e.IsRemoved || e.AgeGroup != ageGroup {
			continue
		}
		bracket = append(bracket, e)
		if e.PositionNumber > maxPosition {
			maxPosition = e.PositionNumber
		}
	}

	neighbourPosition := fromPosition - 1
	if direction == MoveDown {
		neighbourPosition = fromPosition + 1
	}

	if direction == MoveUp && fromPosition <= 1 {
		return nil, false
	}
	if direction == MoveDown && fromPosition >= maxPosition {
		return nil, false
	}

	var mover, neighbour *Entry
	for i := range bracket {
		switch bracket[i].PositionNumber {
		case fromPosition:
			mover = &bracket[i]
		case neighbourPosition:
			neighbour = &bracket[i]
		}
	}
	if mover == nil || neighbour == nil {
		return nil, false
	}

	return []PositionUpdate{
		{PlayerID: mover.PlayerID, Position: SentinelPosition},
		{PlayerID: neighbour.PlayerID, Position: fromPosition},
		{PlayerID: mover.PlayerID, Position: neighbourPosition},
	}, true
}

// TeamBalance is one team's point ledger, recomputed from live roster rows.
type TeamBalance struct {
	Team             team.Team
	TotalPoints      int
	SpentPoints      int
	RemainingPoints  int
	PlayersBought    int
	PlayersRemaining int
}

// ComputeBalances aggregates sold entries into per-team balances. Every team
// of the auction appears in the result, teams without sales included. Output
// is ordered by team name for stable rendering.
func ComputeBalances(basePoints int, teams []team.Team, entries []Entry) []TeamBalance {
	spent := make(map[string]int, len(teams))
	bought := make(map[string]int, len(teams))
	for _, e := range entries {
		if e.TeamID == nil || e.SoldPoints == nil {
			continue
		}
		spent[*e.TeamID] += *e.SoldPoints
		bought[*e.TeamID]++
	}

	out := make([]TeamBalance, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamBalance{
			Team:             t,
			TotalPoints:      basePoints,
			SpentPoints:      spent[t.ID],
			RemainingPoints:  basePoints - spent[t.ID],
			PlayersBought:    bought[t.ID],
			PlayersRemaining: RosterTarget - bought[t.ID],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Team.Name < out[j].Team.Name
	})

	return out
}

// ValidateSale checks the sale preconditions in their mandated order:
// positive points, not reserved, then budget. The budget error carries the
// team's actual remaining value.
func ValidateSale(entry Entry, soldPoints, teamRemaining int) error {
	if soldPoints <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSalePoints, soldPoints)
	}
	if entry.IsReserved {
		return ErrReservedPlayer
	}
	if soldPoints > teamRemaining {
		return fmt.Errorf("%w: remaining=%d requested=%d", ErrInsufficientPoints, teamRemaining, soldPoints)
	}

	return nil
}
