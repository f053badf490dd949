// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package course manages courses and their enrolled students through GORM.
package course

import (
	"strings"

	"github.com/arokeji/library-api/internal/platform/collection"
)

// Course is a course with its enrolled students.
type Course struct {
	ID         int        `json:"id"         gorm:"primaryKey"`
	Name       string     `json:"name"       gorm:"size:100;not null"               validate:"required,max=100"`
	Department string     `json:"department" gorm:"size:100;not null;default:''"    validate:"max=100"`
	Students   []Enrolled `json:"students"   gorm:"foreignKey:CourseID"`
}

// Enrolled is a student row as seen from its course.
type Enrolled struct {
	ID        int    `json:"id"        gorm:"primaryKey"`
	FirstName string `json:"firstName" gorm:"size:50;not null"`
	LastName  string `json:"lastName"  gorm:"size:50;not null"`
	CourseID  *int   `json:"-"`
}

// TableName maps Enrolled onto the students table.
func (Enrolled) TableName() string { return "students" }

// Patch lists the fields a course update may carry.
type Patch struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
}

// Apply implements collection.Patch.
func (p *Patch) Apply(course *Course) {
	if p.Name != nil {
		course.Name = *p.Name
	}
	if p.Department != nil {
		course.Department = *p.Department
	}
}

// Resource returns the collection rules for courses. Enrolment is managed
// from the student side, so incoming student lists are dropped.
func Resource() collection.Resource[Course, int] {
	return collection.Resource[Course, int]{
		Name: "Course",
		IDOf: func(course *Course) int { return course.ID },
		Normalize: func(course *Course) {
			course.Name = strings.TrimSpace(course.Name)
			course.Department = strings.TrimSpace(course.Department)
			course.Students = nil
		},
	}
}
