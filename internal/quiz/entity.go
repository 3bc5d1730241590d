package quiz

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	TimeLimit   int       `gorm:"not null;default:30" json:"time_limit"` // minutes
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID        uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	OptionA       string    `gorm:"type:text;not null" json:"option_a"`
	OptionB       string    `gorm:"type:text;not null" json:"option_b"`
	OptionC       string    `gorm:"type:text;not null" json:"option_c"`
	OptionD       string    `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer Option    `gorm:"type:text;not null" json:"correct_answer"`
	Marks         int       `gorm:"not null;default:1" json:"marks"`
	OrderIndex    int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
