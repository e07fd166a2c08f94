package models

// GlucosePoint is read-only seed data backing the dashboard trend view.
// The service exposes the series as-is; rendering is a client concern.
type GlucosePoint struct {
	ID        uint `gorm:"primaryKey"`
	Hour      int  `gorm:"not null"`
	Today     int
	Yesterday int
}
