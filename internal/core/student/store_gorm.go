// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/dberr"
)

const courseRelation = "Course"

// ErrCourseNotFound is returned when a student references a missing course.
var ErrCourseNotFound = apperr.NotFound("Course")

// GormStore keeps students in the 'students' table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (store *GormStore) FindMany(ctx context.Context, offset, limit int) ([]Student, int, error) {
	var total int64
	if err := store.db.WithContext(ctx).Model(&Student{}).Count(&total).Error; err != nil {
		return nil, 0, dberr.Wrap(err, "count_students")
	}

	students := []Student{}
	err := store.db.WithContext(ctx).
		Preload(courseRelation).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&students).
		Error
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_students")
	}
	return students, int(total), nil
}

func (store *GormStore) FindByID(ctx context.Context, id int) (*Student, error) {
	return store.find(store.db.WithContext(ctx), id)
}

// FindByNamePrefix matches on the first name.
func (store *GormStore) FindByNamePrefix(ctx context.Context, prefix string) ([]Student, error) {
	students := []Student{}
	err := store.db.WithContext(ctx).
		Preload(courseRelation).
		Where(`LOWER(first_name) LIKE LOWER(?) ESCAPE '\'`, collection.EscapeLike(prefix)).
		Order("first_name").
		Find(&students).
		Error
	if err != nil {
		return nil, dberr.Wrap(err, "search_students")
	}
	return students, nil
}

func (store *GormStore) Insert(ctx context.Context, student *Student) (*Student, error) {
	var created *Student
	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCourse(tx, student.CourseID); err != nil {
			return err
		}

		row := Student{FirstName: student.FirstName, LastName: student.LastName, CourseID: student.CourseID}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}

		var err error
		created, err = store.find(tx, row.ID)
		return err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "create_student")
	}
	return created, nil
}

func (store *GormStore) UpdateByID(ctx context.Context, id int, student *Student) (*Student, error) {
	var updated *Student
	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCourse(tx, student.CourseID); err != nil {
			return err
		}

		result := tx.Model(&Student{}).Where("id = ?", id).Updates(map[string]any{
			"first_name": student.FirstName,
			"last_name":  student.LastName,
			"course_id":  student.CourseID,
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
		return nil, dberr.Wrap(err, "update_student")
	}
	return updated, nil
}

func (store *GormStore) DeleteByID(ctx context.Context, id int) (*Student, error) {
	var deleted *Student
	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if deleted, err = store.find(tx, id); err != nil {
			return err
		}
		return tx.Delete(&Student{}, id).Error
	})
	if err != nil {
		return nil, dberr.Wrap(err, "delete_student")
	}
	return deleted, nil
}

func (store *GormStore) find(db *gorm.DB, id int) (*Student, error) {
	student := &Student{}
	if err := db.Preload(courseRelation).First(student, id).Error; err != nil {
		return nil, dberr.Wrap(err, "get_student")
	}
	return student, nil
}

// requireCourse fails with [ErrCourseNotFound] when courseID names no course.
func requireCourse(tx *gorm.DB, courseID *int) error {
	if courseID == nil {
		return nil
	}

	var count int64
	if err := tx.Model(&CourseSummary{}).Where("id = ?", *courseID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCourseNotFound
	}
	return nil
}
