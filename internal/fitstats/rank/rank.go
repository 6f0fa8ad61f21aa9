package rank

import "math"

// Rank is one level of the XP ladder.
type Rank struct {
	Name  string  `json:"name"`
	MinXP float64 `json:"minXP"`
}

// Ladder lists all ranks in ascending MinXP order.
var Ladder = []Rank{
	{Name: "Новичок", MinXP: 0},
	{Name: "Любитель", MinXP: 500},
	{Name: "Атлет", MinXP: 1500},
	{Name: "Мастер", MinXP: 4000},
	{Name: "Машина", MinXP: 10000},
	{Name: "Киборг", MinXP: 25000},
	{Name: "Легенда", MinXP: 50000},
}

// Status describes where a given XP total sits on the ladder.
type Status struct {
	Current Rank `json:"current"`
	// Next is nil at the top of the ladder.
	Next *Rank `json:"next,omitempty"`
	// Progress is the percentage toward Next, 0 to 100.
	// At the top rank it is pinned to 100.
	Progress float64 `json:"progress"`
	TotalXP  float64 `json:"totalXP"`
}

// Current returns the highest rank whose threshold the XP reaches.
// Negative XP clamps to the bottom rank.
func Current(totalXP float64) Rank {
	current := Ladder[0]
	for _, r := range Ladder[1:] {
		if totalXP < r.MinXP {
			break
		}
		current = r
	}
	return current
}

// Next returns the rank above the current one, nil when maxed out.
func Next(totalXP float64) *Rank {
	for i := range Ladder[1:] {
		if totalXP < Ladder[i+1].MinXP {
			next := Ladder[i+1]
			return &next
		}
	}
	return nil
}

// StatusFor computes the full ladder position for an XP total.
func StatusFor(totalXP float64) Status {
	current := Current(totalXP)
	next := Next(totalXP)

	progress := 100.0
	if next != nil {
		span := next.MinXP - current.MinXP
		progress = (totalXP - current.MinXP) / span * 100
		progress = math.Max(0, math.Min(100, progress))
	}

	return Status{
		Current:  current,
		Next:     next,
		Progress: progress,
		TotalXP:  totalXP,
	}
}
