package specification

import "gorm.io/gorm"

// ByCollegeID filters by the college's string primary key.
type ByCollegeID struct {
	ID string
}

func (s ByCollegeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByIDOrName matches the upsert key: an existing row matching either the
// external id or the name counts as "already present", first match wins.
type ByIDOrName struct {
	ID   string
	Name string
}

func (s ByIDOrName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ? OR name = ?", s.ID, s.Name)
}

type ByState struct {
	State string
}

func (s ByState) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("state = ?", s.State)
}

type ByType struct {
	Type string
}

func (s ByType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
