package payroll

import "strings"

// Classify assigns a level from salary and gender. Rules are evaluated in
// order and the first match wins:
//
//	10000 < salary < 20000                       -> A1
//	7500 < salary < 30000 and gender is female   -> A5-F
//	otherwise                                    -> Standard
//
// The gender comparison ignores case.
func Classify(salary float64, gender Gender) Level {
	switch {
	case salary > 10000 && salary < 20000:
		return LevelA1
	case salary > 7500 && salary < 30000 && isFemale(gender):
		return LevelA5F
	default:
		return LevelStandard
	}
}

func isFemale(g Gender) bool {
	return strings.EqualFold(string(g), string(GenderFemale))
}
