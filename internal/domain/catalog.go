package domain

// Difficulty уровень сложности занятия
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// BillingPeriod период оплаты абонемента
type BillingPeriod string

const (
	PeriodMonthly   BillingPeriod = "Monthly"
	PeriodQuarterly BillingPeriod = "Quarterly"
	PeriodYearly    BillingPeriod = "Yearly"
)

// Trainer represents a gym trainer
type Trainer struct {
	ID             string
	Name           string
	Specialization string
	Bio            string
	Image          string
	Experience     int // years
	Certifications []string
}

// Class represents a group class type
type Class struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Difficulty      Difficulty
	Image           string
	TrainerID       string
}

// MembershipPlan represents a pricing plan
type MembershipPlan struct {
	ID       string
	Name     string
	Price    float64
	Period   BillingPeriod
	Features []string
	Popular  bool
}

// Catalog статический контент: тренеры, занятия, тарифы и недельное расписание
type Catalog struct {
	Trainers []Trainer
	Classes  []Class
	Plans    []MembershipPlan
	Schedule []ScheduleSlot
}

// ClassByID returns the class with the given id
func (c *Catalog) ClassByID(id string) (*Class, bool) {
	for i := range c.Classes {
		if c.Classes[i].ID == id {
			return &c.Classes[i], true
		}
	}
	return nil, false
}

// TrainerByID returns the trainer with the given id
func (c *Catalog) TrainerByID(id string) (*Trainer, bool) {
	for i := range c.Trainers {
		if c.Trainers[i].ID == id {
			return &c.Trainers[i], true
		}
	}
	return nil, false
}

// PlanByID returns the membership plan with the given id
func (c *Catalog) PlanByID(id string) (*MembershipPlan, bool) {
	for i := range c.Plans {
		if c.Plans[i].ID == id {
			return &c.Plans[i], true
		}
	}
	return nil, false
}
