package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryMobile    Category = "mobile"
	CategoryWeb       Category = "web"
	CategoryFullstack Category = "fullstack"
	CategoryAI        Category = "ai"
	CategoryOther     Category = "other"
)

// Categories lists every accepted category in declaration order.
var Categories = []Category{CategoryMobile, CategoryWeb, CategoryFullstack, CategoryAI, CategoryOther}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPlanned    Status = "planned"
)

var Statuses = []Status{StatusCompleted, StatusInProgress, StatusPlanned}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

const ShortDescriptionMaxLen = 200

type Project struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name" validate:"required"`
	Description      string             `json:"description" bson:"description" validate:"required"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription" validate:"required,max=200"`
	Image            string             `json:"image" bson:"image" validate:"required"`
	Technologies     []string           `json:"technologies" bson:"technologies" validate:"required,min=1,dive,required"`
	Category         Category           `json:"category" bson:"category" validate:"oneof=mobile web fullstack ai other"`
	GithubURL        string             `json:"githubUrl,omitempty" bson:"githubUrl,omitempty"`
	LiveURL          string             `json:"liveUrl,omitempty" bson:"liveUrl,omitempty"`
	PlayStoreURL     string             `json:"playStoreUrl,omitempty" bson:"playStoreUrl,omitempty"`
	AppStoreURL      string             `json:"appStoreUrl,omitempty" bson:"appStoreUrl,omitempty"`
	Featured         bool               `json:"featured" bson:"featured"`
	Status           Status             `json:"status" bson:"status" validate:"oneof=completed in-progress planned"`
	CompletionDate   *time.Time         `json:"completionDate,omitempty" bson:"completionDate,omitempty"`
	Screenshots      []string           `json:"screenshots" bson:"screenshots"`
	Highlights       []string           `json:"highlights" bson:"highlights"`
	Challenges       []string           `json:"challenges" bson:"challenges"`
	Solutions        []string           `json:"solutions" bson:"solutions"`
	Client           string             `json:"client,omitempty" bson:"client,omitempty"`
	TeamSize         int                `json:"teamSize" bson:"teamSize" validate:"gte=1"`
	Duration         string             `json:"duration,omitempty" bson:"duration,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the fields the schema defaults when a writer leaves
// them empty and normalises nil slices so they encode as [].
func (p *Project) ApplyDefaults() {
	if p.Category == "" {
		p.Category = CategoryMobile
	}
	if p.Status == "" {
		p.Status = StatusCompleted
	}
	if p.TeamSize == 0 {
		p.TeamSize = 1
	}
	if p.Screenshots == nil {
		p.Screenshots = []string{}
	}
	if p.Highlights == nil {
		p.Highlights = []string{}
	}
	if p.Challenges == nil {
		p.Challenges = []string{}
	}
	if p.Solutions == nil {
		p.Solutions = []string{}
	}
}

// ProjectPatch carries the fields of an update request; nil means "leave as is".
type ProjectPatch struct {
	Name             *string    `json:"name"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"shortDescription"`
	Image            *string    `json:"image"`
	Technologies     *[]string  `json:"technologies"`
	Category         *Category  `json:"category"`
	GithubURL        *string    `json:"githubUrl"`
	LiveURL          *string    `json:"liveUrl"`
	PlayStoreURL     *string    `json:"playStoreUrl"`
	AppStoreURL      *string    `json:"appStoreUrl"`
	Featured         *bool      `json:"featured"`
	Status           *Status    `json:"status"`
	CompletionDate   *time.Time `json:"completionDate"`
	Screenshots      *[]string  `json:"screenshots"`
	Highlights       *[]string  `json:"highlights"`
	Challenges       *[]string  `json:"challenges"`
	Solutions        *[]string  `json:"solutions"`
	Client           *string    `json:"client"`
	TeamSize         *int       `json:"teamSize"`
	Duration         *string    `json:"duration"`
}

// Apply copies every provided field onto p.
func (patch ProjectPatch) Apply(p *Project) {
	setString(&p.Name, patch.Name)
	setString(&p.Description, patch.Description)
	setString(&p.ShortDescription, patch.ShortDescription)
	setString(&p.Image, patch.Image)
	setSlice(&p.Technologies, patch.Technologies)
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	setString(&p.GithubURL, patch.GithubURL)
	setString(&p.LiveURL, patch.LiveURL)
	setString(&p.PlayStoreURL, patch.PlayStoreURL)
	setString(&p.AppStoreURL, patch.AppStoreURL)
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.CompletionDate != nil {
		d := *patch.CompletionDate
		p.CompletionDate = &d
	}
	setSlice(&p.Screenshots, patch.Screenshots)
	setSlice(&p.Highlights, patch.Highlights)
	setSlice(&p.Challenges, patch.Challenges)
	setSlice(&p.Solutions, patch.Solutions)
	setString(&p.Client, patch.Client)
	if patch.TeamSize != nil {
		p.TeamSize = *patch.TeamSize
	}
	setString(&p.Duration, patch.Duration)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setSlice(dst *[]string, v *[]string) {
	if v != nil {
		*dst = append([]string(nil), (*v)...)
	}
}
