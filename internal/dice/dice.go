package dice

import (
	"fmt"
	"strings"
)

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
	IsCrit   bool
	IsFumble bool
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	if r.Bonus != 0 {
		return fmt.Sprintf("**%d** : %s%+d", r.Total, compact, r.Bonus)
	}
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
