// Package domain defines the wellness records persisted by the application and
// the boundary types (ID, Timestamp) that give them a stable wire shape across
// JSON, BSON and SQL.
//
// Every record is append-only: it is created once, read back newest first and
// never updated or deleted.
package domain

import "time"

// Collection names, shared by the document and the SQL backends.
const (
	CollectionBMI         = "bmi_records"
	CollectionWorkouts    = "workout_records"
	CollectionMeditations = "meditation_records"
	CollectionChat        = "chat_history"
	CollectionAssessments = "assessment_results"
	CollectionReports     = "health_reports"
	CollectionHealthData  = "health_data"
)

// Record is implemented by every persisted entity.
type Record interface {
	// Collection names the collection (or table) the record belongs to.
	Collection() string
	// SetID assigns the identifier before the record is written.
	SetID(ID)
}

// BMIReading is one body-mass-index calculation. Weight and height are stored
// in kilograms and centimeters whatever unit system the client submitted.
type BMIReading struct {
	ID        ID        `json:"_id"       bson:"_id,omitempty" yaml:"_id"       gorm:"type:varchar(64);primaryKey"`
	Weight    float64   `json:"weight"    bson:"weight"        yaml:"weight"`
	Height    float64   `json:"height"    bson:"height"        yaml:"height"`
	Unit      string    `json:"unit"      bson:"unit"          yaml:"unit"      gorm:"type:varchar(16)"`
	BMI       float64   `json:"bmi"       bson:"bmi"           yaml:"bmi"`
	Category  string    `json:"category"  bson:"category"      yaml:"category"  gorm:"type:varchar(32);not null"`
	Timestamp Timestamp `json:"timestamp" bson:"timestamp"     yaml:"timestamp" gorm:"index"`
}

func (*BMIReading) Collection() string { return CollectionBMI }
func (BMIReading) TableName() string   { return CollectionBMI }
func (r *BMIReading) SetID(id ID)      { r.ID = id }

// WorkoutEntry is a completed workout session.
type WorkoutEntry struct {
	ID           ID        `json:"_id"           bson:"_id,omitempty" yaml:"_id"           gorm:"type:varchar(64);primaryKey"`
	ExerciseType string    `json:"exercise_type" bson:"exercise_type" yaml:"exercise_type" gorm:"type:varchar(128);not null"`
	Duration     int       `json:"duration"      bson:"duration"      yaml:"duration"`
	Timestamp    Timestamp `json:"timestamp"     bson:"timestamp"     yaml:"timestamp"     gorm:"index"`
}

func (*WorkoutEntry) Collection() string { return CollectionWorkouts }
func (WorkoutEntry) TableName() string   { return CollectionWorkouts }
func (r *WorkoutEntry) SetID(id ID)      { r.ID = id }

// MeditationEntry is a completed meditation session.
type MeditationEntry struct {
	ID             ID        `json:"_id"             bson:"_id,omitempty"   yaml:"_id"             gorm:"type:varchar(64);primaryKey"`
	MeditationType string    `json:"meditation_type" bson:"meditation_type" yaml:"meditation_type" gorm:"type:varchar(128);not null"`
	Duration       int       `json:"duration"        bson:"duration"        yaml:"duration"`
	Timestamp      Timestamp `json:"timestamp"       bson:"timestamp"       yaml:"timestamp"       gorm:"index"`
}

func (*MeditationEntry) Collection() string { return CollectionMeditations }
func (MeditationEntry) TableName() string   { return CollectionMeditations }
func (r *MeditationEntry) SetID(id ID)      { r.ID = id }

// ChatTurn is one user message and the reply it received. Fallback marks
// replies that came from the canned apology instead of the model.
type ChatTurn struct {
	ID          ID        `json:"_id"          bson:"_id,omitempty" yaml:"_id"          gorm:"type:varchar(64);primaryKey"`
	SessionID   string    `json:"session_id"   bson:"session_id"    yaml:"session_id"   gorm:"type:varchar(64);index"`
	UserMessage string    `json:"user_message" bson:"user_message"  yaml:"user_message" gorm:"type:text;not null"`
	BotResponse string    `json:"bot_response" bson:"bot_response"  yaml:"bot_response" gorm:"type:text;not null"`
	Provider    string    `json:"provider"     bson:"provider"      yaml:"provider"     gorm:"type:varchar(32)"`
	Fallback    bool      `json:"fallback"     bson:"fallback"      yaml:"fallback"`
	Timestamp   Timestamp `json:"timestamp"    bson:"timestamp"     yaml:"timestamp"    gorm:"index"`
}

func (*ChatTurn) Collection() string { return CollectionChat }
func (ChatTurn) TableName() string   { return CollectionChat }
func (r *ChatTurn) SetID(id ID)      { r.ID = id }

// AssessmentResult is a scored questionnaire submission.
type AssessmentResult struct {
	ID        ID        `json:"_id"        bson:"_id,omitempty" yaml:"_id"        gorm:"type:varchar(64);primaryKey"`
	Type      string    `json:"type"       bson:"type"          yaml:"type"       gorm:"type:varchar(32);not null;index"`
	Responses []int     `json:"responses"  bson:"responses"     yaml:"responses"  gorm:"serializer:json"`
	Score     int       `json:"score"      bson:"score"         yaml:"score"`
	MaxScore  int       `json:"max_score"  bson:"max_score"     yaml:"max_score"`
	Severity  string    `json:"severity"   bson:"severity"      yaml:"severity"   gorm:"type:varchar(64)"`
	Submitter string    `json:"submitter"  bson:"submitter"     yaml:"submitter"  gorm:"type:varchar(64)"`
	Timestamp Timestamp `json:"timestamp"  bson:"timestamp"     yaml:"timestamp"  gorm:"index"`
}

func (*AssessmentResult) Collection() string { return CollectionAssessments }
func (AssessmentResult) TableName() string   { return CollectionAssessments }
func (r *AssessmentResult) SetID(id ID)      { r.ID = id }

// HealthReport is a personal metrics report: BMI, BMR and the daily calorie need.
type HealthReport struct {
	ID            ID        `json:"_id"            bson:"_id,omitempty"  yaml:"_id"            gorm:"type:varchar(64);primaryKey"`
	Weight        float64   `json:"weight"         bson:"weight"         yaml:"weight"`
	Height        float64   `json:"height"         bson:"height"         yaml:"height"`
	BirthDate     string    `json:"birthdate"      bson:"birthdate"      yaml:"birthdate"      gorm:"type:varchar(16)"`
	Gender        string    `json:"gender"         bson:"gender"         yaml:"gender"         gorm:"type:varchar(16)"`
	ActivityLevel string    `json:"activity_level" bson:"activity_level" yaml:"activity_level" gorm:"type:varchar(16)"`
	Age           int       `json:"age"            bson:"age"            yaml:"age"`
	BMI           float64   `json:"bmi"            bson:"bmi"            yaml:"bmi"`
	Category      string    `json:"category"       bson:"category"       yaml:"category"       gorm:"type:varchar(32)"`
	BMR           float64   `json:"bmr"            bson:"bmr"            yaml:"bmr"`
	DailyCalories int       `json:"daily_calories" bson:"daily_calories" yaml:"daily_calories"`
	Timestamp     Timestamp `json:"timestamp"      bson:"timestamp"      yaml:"timestamp"      gorm:"index"`
}

func (*HealthReport) Collection() string { return CollectionReports }
func (HealthReport) TableName() string   { return CollectionReports }
func (r *HealthReport) SetID(id ID)      { r.ID = id }

// HealthSnapshot is a dashboard check-in combining body metrics with a
// self-reported mental wellness score (0..10).
type HealthSnapshot struct {
	ID              ID        `json:"_id"             bson:"_id,omitempty"   yaml:"_id"             gorm:"type:varchar(64);primaryKey"`
	Weight          float64   `json:"weight"          bson:"weight"          yaml:"weight"`
	Height          float64   `json:"height"          bson:"height"          yaml:"height"`
	BMI             float64   `json:"bmi"             bson:"bmi"             yaml:"bmi"`
	Category        string    `json:"category"        bson:"category"        yaml:"category"        gorm:"type:varchar(32)"`
	MentalScore     int       `json:"mental_score"    bson:"mental_score"    yaml:"mental_score"`
	MentalStatus    string    `json:"mental_status"   bson:"mental_status"   yaml:"mental_status"   gorm:"type:varchar(32)"`
	Recommendations []string  `json:"recommendations" bson:"recommendations" yaml:"recommendations" gorm:"serializer:json"`
	Timestamp       Timestamp `json:"timestamp"       bson:"timestamp"       yaml:"timestamp"       gorm:"index"`
}

func (*HealthSnapshot) Collection() string { return CollectionHealthData }
func (HealthSnapshot) TableName() string   { return CollectionHealthData }
func (r *HealthSnapshot) SetID(id ID)      { r.ID = id }

// Now returns the current instant as a Timestamp.
func Now() Timestamp { return NewTimestamp(time.Now()) }
