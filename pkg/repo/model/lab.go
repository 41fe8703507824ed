package model

type Category string

const (
	CategoryPython Category = "python"
	CategoryCpp    Category = "c++"
	CategoryCloud  Category = "cloud"
)

type CourseLevel string

const (
	Beginner     CourseLevel = "Beginner"
	Intermediate CourseLevel = "Intermediate"
	Advanced     CourseLevel = "Advanced"
)

type LabType string

const (
	LabType1 LabType = "Type 1"
	LabType2 LabType = "Type 2"
	LabType3 LabType = "Type 3"
)

type LabProfile struct {
	BaseModel
	Title              string               `gorm:"type:text;not null;index" json:"title"`
	Category           Category             `gorm:"type:varchar(32);not null" json:"category"`
	DescriptiveTitle   string               `gorm:"type:text;not null" json:"descriptive_title"`
	CourseLevel        CourseLevel          `gorm:"type:varchar(32);not null" json:"course_level"`
	LabType            LabType              `gorm:"type:varchar(32);not null" json:"lab_type"`
	AdditionalImage    *string              `gorm:"type:text" json:"additional_image"`
	LearningObjectives []*LearningObjective `gorm:"foreignKey:LabProfileID;constraint:OnDelete:CASCADE" json:"learning_objectives,omitempty"`
	LearningOutcomes   []*LearningOutcome   `gorm:"foreignKey:LabProfileID;constraint:OnDelete:CASCADE" json:"learning_outcomes,omitempty"`
}

func (*LabProfile) TableName() string {
	return "lab_profiles"
}

// LearningItem is the shape shared by objectives and outcomes.
type LearningItem struct {
	Header       string `gorm:"type:text;not null" json:"header"`
	Content      string `gorm:"type:text;not null" json:"content"`
	LabProfileID int64  `gorm:"not null;index" json:"lab_profile_id"`
}

type LearningObjective struct {
	BaseModel
	LearningItem
}

func (*LearningObjective) TableName() string {
	return "learning_objectives"
}

type LearningOutcome struct {
	BaseModel
	LearningItem
}

func (*LearningOutcome) TableName() string {
	return "learning_outcomes"
}
