package catalog

// Модели YAML-файла каталога

type catalogFile struct {
	Trainers []trainerRecord `yaml:"trainers"`
	Classes  []classRecord   `yaml:"classes"`
	Plans    []planRecord    `yaml:"plans"`
	Schedule []slotRecord    `yaml:"schedule"`
}

type trainerRecord struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Specialization string   `yaml:"specialization"`
	Bio            string   `yaml:"bio"`
	Image          string   `yaml:"image"`
	Experience     int      `yaml:"experience"`
	Certifications []string `yaml:"certifications"`
}

type classRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Duration    int    `yaml:"duration"` // minutes
	Difficulty  string `yaml:"difficulty"`
	Image       string `yaml:"image"`
	TrainerID   string `yaml:"trainerId"`
}

type planRecord struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Price    float64  `yaml:"price"`
	Period   string   `yaml:"period"`
	Features []string `yaml:"features"`
	Popular  bool     `yaml:"popular"`
}

type slotRecord struct {
	ID        string `yaml:"id"`
	ClassID   string `yaml:"classId"`
	TrainerID string `yaml:"trainerId"`
	Day       string `yaml:"day"`
	Time      string `yaml:"time"`
	Capacity  int    `yaml:"capacity"`
	Booked    int    `yaml:"booked"`
}
