package generator

import "finwatch/internal/random"

// Fixed name pools. Large enough to look varied in a demo feed; collisions
// across a batch are harmless since identity lives in the CUST- id.
var firstNames = []string{
	"James", "Mary", "Wei", "Mei Ling", "David", "Sarah", "Rajesh", "Priya",
	"Michael", "Jessica", "Ahmed", "Fatima", "Daniel", "Laura", "Kenji", "Yuki",
	"Thomas", "Anna", "Carlos", "Sofia", "Nurul", "Hassan", "Elena", "Viktor",
}

var lastNames = []string{
	"Tan", "Lim", "Smith", "Johnson", "Wong", "Lee", "Patel", "Sharma",
	"Brown", "Garcia", "Chen", "Ng", "Müller", "Kim", "Nakamura", "Singh",
	"Ivanov", "Rossi", "Abdullah", "Olsen", "Silva", "Kumar", "Osman", "Novak",
}

var companyStems = []string{
	"Meridian", "Apex", "Pacific", "Summit", "Horizon", "Sterling", "Vanguard",
	"Pinnacle", "Atlas", "Crescent", "Orchid", "Raffles", "Keystone", "Marina",
	"Sentosa", "Evergreen", "Cascade", "Northbridge", "Solaris", "Temasek",
}

var companySuffixes = []string{
	"Group", "Holdings", "Partners", "International", "Industries",
	"Solutions", "Ventures", "Enterprises", "Global", "Corporation",
}

// financeSuffixes are appended to Financial Services merchants.
var financeSuffixes = []string{"Bank", "Financial", "Capital", "Investments", "Trust"}

func (s *service) customerName() string {
	return random.Pick(s.rng, firstNames) + " " + random.Pick(s.rng, lastNames)
}

func (s *service) merchantName(category string) string {
	name := random.Pick(s.rng, companyStems) + " " + random.Pick(s.rng, companySuffixes)
	if category == merchantCategoryFinancial {
		name += " " + random.Pick(s.rng, financeSuffixes)
	}
	return name
}
