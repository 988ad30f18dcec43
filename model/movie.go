package model

import "time"

type Movie struct {
	DTO
	Slug        string     `gorm:"uniqueIndex" json:"slug"`
	Title       string     `gorm:"not null" validate:"required" json:"title"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	Duration    int        `gorm:"not null" validate:"required,gt=0" json:"duration"` // minutes
	Language    string     `json:"language"`
	Rating      float64    `json:"rating"`
	PosterUrl   string     `json:"posterUrl"`
	TrailerUrl  string     `json:"trailerUrl"`
	ReleaseDate time.Time  `json:"releaseDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      string     `gorm:"default:COMING_SOON" json:"status"`
	// Attributes holds free-form descriptive tags (e.g. "action,high-budget").
	// Former movie subtypes carried no behaviour, only extra fields.
	Attributes string `json:"attributes"`

	Showtimes []Showtime `gorm:"foreignKey:MovieId" json:"-"`
}

type Movies []Movie

type CreateMovieInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	Duration    int        `json:"duration" validate:"required,gt=0"`
	Language    string     `json:"language"`
	Rating      float64    `json:"rating" validate:"omitempty,gte=0,lte=10"`
	PosterUrl   string     `json:"posterUrl" validate:"omitempty,url"`
	TrailerUrl  string     `json:"trailerUrl" validate:"omitempty,url"`
	ReleaseDate time.Time  `json:"releaseDate"`
	EndDate     *time.Time `json:"endDate"`
	Attributes  string     `json:"attributes"`
}

type EditMovieInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Genre       *string    `json:"genre"`
	Duration    *int       `json:"duration" validate:"omitempty,gt=0"`
	Language    *string    `json:"language"`
	Rating      *float64   `json:"rating" validate:"omitempty,gte=0,lte=10"`
	PosterUrl   *string    `json:"posterUrl" validate:"omitempty,url"`
	TrailerUrl  *string    `json:"trailerUrl" validate:"omitempty,url"`
	EndDate     *time.Time `json:"endDate"`
	Attributes  *string    `json:"attributes"`
}

type FilterMovie struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Genre     string `json:"genre"`
	Status    string `json:"status" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED"`
}
