package postgre

import (
	"database/sql"

	"rockguard-srv/internal/alert/repository"
	"rockguard-srv/pkg/encrypter"
	"rockguard-srv/pkg/log"
)

type implRepository struct {
	db        *sql.DB
	l         log.Logger
	encrypter encrypter.Encrypter
}

// New - Factory function
func New(db *sql.DB, l log.Logger, enc encrypter.Encrypter) repository.Repository {
	return &implRepository{
		db:        db,
		l:         l,
		encrypter: enc,
	}
}
