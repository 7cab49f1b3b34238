package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens a shared in-memory SQLite connection and migrates the given
// models. The connection is a process-wide singleton so every scenario talks
// to the same schema.
func NewDb(models ...any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	d := &Db{DbConn: dbConn, models: models}
	if err := d.migrate(); err != nil {
		panic(err)
	}

	return d
}

func (d *Db) migrate() error {
	if err := d.DbConn.AutoMigrate(d.models...); err != nil {
		return err
	}
	for _, m := range d.models {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}
	return nil
}

// ClearDB deletes every row from every migrated table.
func (d *Db) ClearDB() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows for a model.
func (d *Db) Count(m any) (int64, error) {
	var count int64
	err := d.DbConn.Model(m).Count(&count).Error
	return count, err
}
