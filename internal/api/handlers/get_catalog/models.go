package get_catalog

import "github.com/TahaKotwal12/247-gym/internal/domain"

type TrainerResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Bio            string   `json:"bio"`
	Image          string   `json:"image"`
	Experience     int      `json:"experience"`
	Certifications []string `json:"certifications"`
}

type ClassResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Image       string `json:"image"`
	TrainerID   string `json:"trainerId"`
}

type PlanResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

func fromTrainers(trainers []domain.Trainer) []TrainerResponse {
	result := make([]TrainerResponse, 0, len(trainers))
	for _, t := range trainers {
		result = append(result, TrainerResponse{
			ID:             t.ID,
			Name:           t.Name,
			Specialization: t.Specialization,
			Bio:            t.Bio,
			Image:          t.Image,
			Experience:     t.Experience,
			Certifications: t.Certifications,
		})
	}
	return result
}

func fromClasses(classes []domain.Class) []ClassResponse {
	result := make([]ClassResponse, 0, len(classes))
	for _, c := range classes {
		result = append(result, ClassResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Duration:    c.DurationMinutes,
			Difficulty:  string(c.Difficulty),
			Image:       c.Image,
			TrainerID:   c.TrainerID,
		})
	}
	return result
}

func fromPlans(plans []domain.MembershipPlan) []PlanResponse {
	result := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, PlanResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Period:   string(p.Period),
			Features: p.Features,
			Popular:  p.Popular,
		})
	}
	return result
}
