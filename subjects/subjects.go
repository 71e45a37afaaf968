// Package subjects holds the static curriculum table used to seed a new
// user's boards at signup.
package subjects

import "time"

// curriculum maps academic year (0-indexed) to the two term subject lists.
// Index 0 is the autumn term, index 1 the spring term.
var curriculum = [][2][]string{
	{
		{"Fundamentals of Programming", "Discrete Mathematics", "Computer Architecture", "Calculus", "Physics for Computing"},
		{"Data Structures", "Linear Algebra", "Digital Systems", "Programming Projects", "Statistics"},
	},
	{
		{"Algorithms", "Operating Systems", "Databases", "Probability", "Computer Networks"},
		{"Software Engineering", "Programming Languages", "Interfaces and Interaction", "Parallel Computing", "Economics for Engineers"},
	},
	{
		{"Distributed Systems", "Compilers", "Artificial Intelligence", "Information Security", "Project Management"},
		{"Machine Learning", "Web Architecture", "Embedded Systems", "Computer Graphics", "Ethics and Regulation"},
	},
	{
		{"Cloud Computing", "Advanced Databases", "Software Quality", "Entrepreneurship"},
		{"Final Year Project", "Professional Internship"},
	},
}

// TermSlot maps a wall-clock instant to the term half of the curriculum:
// February onward selects the spring term (1), January the autumn term (0).
func TermSlot(now time.Time) int {
	if int(now.Month())-1 >= 1 {
		return 1
	}
	return 0
}

// ForYearTerm returns the subject list for a 0-indexed academic year and term
// slot, or nil when the year is outside the curriculum.
func ForYearTerm(yearIndex, slot int) []string {
	if yearIndex < 0 || yearIndex >= len(curriculum) || slot < 0 || slot > 1 {
		return nil
	}
	return curriculum[yearIndex][slot]
}

// Years reports how many academic years the curriculum covers.
func Years() int {
	return len(curriculum)
}
