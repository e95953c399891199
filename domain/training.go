package domain

// Training categories used by the module catalog.
const (
	TrainingSafety          = "Safety"
	TrainingTechnical       = "Technical"
	TrainingCustomerService = "Customer Service"
)

// TrainingSection is one page of a training module.
type TrainingSection struct {
	Title   string
	Content string
}

// TrainingModule is an entry in the static training catalog. Completion is
// tracked in process memory.
type TrainingModule struct {
	ID          string
	Title       string
	Description string
	Duration    string
	Category    string
	Completed   bool
	Progress    int // percent, 0-100
	Sections    []TrainingSection
}
