package model

type Movie struct {
	DTO
	Title          string `gorm:"not null;index" validate:"required" json:"title"` //Tên phim
	Genre          string `gorm:"index" json:"genre"`                              // Thể loại
	Duration       int    `gorm:"not null" validate:"required" json:"duration"`    //thời lượng phim (phút)
	Slug           string `gorm:"uniqueIndex" json:"slug"`
	AgeRestriction string `gorm:"size:5" validate:"omitempty,oneof=P K T13 T16 T18" json:"ageRestriction"`
	StatusMovie    string `gorm:"not null;default:'NOW_SHOWING'" validate:"omitempty,oneof=COMING_SOON NOW_SHOWING ENDED" json:"statusMovie"`
	PosterUrl      *string `gorm:"type:varchar(255)" json:"posterUrl"`
}
