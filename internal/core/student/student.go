// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package student manages students through GORM. A student may be enrolled
// in one course.
package student

import (
	"strings"

	"github.com/arokeji/library-api/internal/platform/collection"
)

// Student is an enrolled or unassigned student.
type Student struct {
	ID        int            `json:"id"               gorm:"primaryKey"`
	FirstName string         `json:"firstName"        gorm:"size:50;not null" validate:"required,max=50"`
	LastName  string         `json:"lastName"         gorm:"size:50;not null" validate:"required,max=50"`
	CourseID  *int           `json:"courseId"`
	Course    *CourseSummary `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// CourseSummary is the course as embedded in student responses.
type CourseSummary struct {
	ID         int    `json:"id"         gorm:"primaryKey"`
	Name       string `json:"name"       gorm:"size:100;not null"`
	Department string `json:"department" gorm:"size:100;not null;default:''"`
}

// TableName maps CourseSummary onto the courses table.
func (CourseSummary) TableName() string { return "courses" }

// Patch lists the fields a student update may carry.
type Patch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	CourseID  *int    `json:"courseId"`
}

// Apply implements collection.Patch.
func (p *Patch) Apply(student *Student) {
	if p.FirstName != nil {
		student.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		student.LastName = *p.LastName
	}
	if p.CourseID != nil {
		student.CourseID = p.CourseID
	}
}

// Resource returns the collection rules for students.
func Resource() collection.Resource[Student, int] {
	return collection.Resource[Student, int]{
		Name: "Student",
		IDOf: func(student *Student) int { return student.ID },
		Normalize: func(student *Student) {
			student.FirstName = strings.TrimSpace(student.FirstName)
			student.LastName = strings.TrimSpace(student.LastName)
			student.Course = nil
		},
	}
}
