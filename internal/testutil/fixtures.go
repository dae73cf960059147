package testutil

// Fixture is a named, reusable set of records.
type Fixture interface {
	Name() string
	Donations() []Donation
}

type fixture struct {
	name      string
	donations []Donation
}

func (f *fixture) Name() string          { return f.name }
func (f *fixture) Donations() []Donation { return f.donations }

// Predefined fixtures.
var (
	// FixtureRoulette has three donors, three outcome labels and one donor
	// who switched nicknames.
	FixtureRoulette Fixture = &fixture{
		name: "Roulette",
		donations: []Donation{
			{Donor: "홍길동(hong)", Amount: "100", Message: "화이팅", Outcome: "잭팟(10%)"},
			{Donor: "김철수(kim)", Amount: "10", Outcome: "당첨(20%)"},
			{Donor: "길동이(hong)", Amount: "5", Outcome: "꽝(70%)"},
			{Donor: "이영희(lee)", Amount: "50"},
		},
	}

	// FixtureMessy has amounts with units, a donor label with a comma, and a
	// donor label without an id.
	FixtureMessy Fixture = &fixture{
		name: "Messy",
		donations: []Donation{
			{Donor: "큰손(whale)", Amount: "1000개", Outcome: "꽝(70%)"},
			{Donor: "익명 후원자", Amount: "3개"},
			{Donor: "큰손, 두번째(whale)", Amount: "2개", Outcome: "꽝(70%)"},
		},
	}
)
