package model

type Cinema struct {
	DTO
	Name    string `gorm:"not null" validate:"required" json:"name"`
	Slug    string `gorm:"uniqueIndex" json:"slug"`
	Address string `gorm:"type:text" json:"address"`
	Rooms   []Room `gorm:"foreignKey:CinemaId" json:"rooms"`
}

type RoomType string

const (
	Small  RoomType = "Small"
	Medium RoomType = "Medium"
	Large  RoomType = "Large"
	IMAX   RoomType = "IMAX"
	FourDX RoomType = "4DX"
)

type Room struct {
	DTO
	Name       string   `gorm:"not null" validate:"required" json:"name"`
	RoomNumber uint     `json:"roomNumber" validate:"required,min=1"`
	Type       RoomType `json:"type"`
	Status     string   `gorm:"not null;default:'available'" json:"status"`
	CinemaId   uint     `json:"cinemaId"`
	Cinema     Cinema   `gorm:"foreignKey:CinemaId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"cinema"`
	Seats      []Seat   `gorm:"foreignKey:RoomId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"seats"`
}
