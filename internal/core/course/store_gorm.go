// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/dberr"
)

const studentsRelation = "Students"

// GormStore keeps courses in the 'courses' table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (store *GormStore) FindMany(ctx context.Context, offset, limit int) ([]Course, int, error) {
	var total int64
	if err := store.db.WithContext(ctx).Model(&Course{}).Count(&total).Error; err != nil {
		return nil, 0, dberr.Wrap(err, "count_courses")
	}

	courses := []Course{}
	err := store.withStudents(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&courses).
		Error
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_courses")
	}
	for index := range courses {
		ensureStudents(&courses[index])
	}
	return courses, int(total), nil
}

func (store *GormStore) FindByID(ctx context.Context, id int) (*Course, error) {
	return store.find(store.db.WithContext(ctx), id)
}

func (store *GormStore) FindByNamePrefix(ctx context.Context, prefix string) ([]Course, error) {
	courses := []Course{}
	err := store.withStudents(ctx).
		Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, collection.EscapeLike(prefix)).
		Order("name").
		Find(&courses).
		Error
	if err != nil {
		return nil, dberr.Wrap(err, "search_courses")
	}
	for index := range courses {
		ensureStudents(&courses[index])
	}
	return courses, nil
}

func (store *GormStore) Insert(ctx context.Context, course *Course) (*Course, error) {
	row := Course{Name: course.Name, Department: course.Department}
	if err := store.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, dberr.Wrap(err, "create_course")
	}
	row.Students = []Enrolled{}
	return &row, nil
}

func (store *GormStore) UpdateByID(ctx context.Context, id int, course *Course) (*Course, error) {
	var updated *Course
	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Course{}).Where("id = ?", id).Updates(map[string]any{
			"name":       course.Name,
			"department": course.Department,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var err error
		updated, err = store.find(tx, id)
		return err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "update_course")
	}
	return updated, nil
}

// DeleteByID detaches every enrolled student and removes the course in one
// transaction. The returned course lists the students it had.
func (store *GormStore) DeleteByID(ctx context.Context, id int) (*Course, error) {
	var deleted *Course
	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if deleted, err = store.find(tx, id); err != nil {
			return err
		}

		if err := tx.Model(&Enrolled{}).Where("course_id = ?", id).Update("course_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&Course{}, id).Error
	})
	if err != nil {
		return nil, dberr.Wrap(err, "delete_course")
	}
	return deleted, nil
}

func (store *GormStore) withStudents(ctx context.Context) *gorm.DB {
	return store.db.WithContext(ctx).Preload(studentsRelation, byID)
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (store *GormStore) find(db *gorm.DB, id int) (*Course, error) {
	course := &Course{}
	err := db.Preload(studentsRelation, byID).First(course, id).Error
	if err != nil {
		return nil, dberr.Wrap(err, "get_course")
	}

	ensureStudents(course)
	return course, nil
}

// ensureStudents renders courses without enrolments as an empty list.
func ensureStudents(course *Course) {
	if course.Students == nil {
		course.Students = []Enrolled{}
	}
}
