package db

import "gorm.io/gorm"

type Repositories struct {
	Entries *EntryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Entries: NewEntryRepository(database),
	}
}
