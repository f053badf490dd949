// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Seed replaces every student and course with the demo course
// "Matemáticas" and its two students. Students are written through the
// association, in one transaction.
func Seed(ctx context.Context, db *gorm.DB) (*Course, error) {
	seeded := &Course{
		Name:       "Matemáticas",
		Department: "Números",
		Students: []Enrolled{
			{FirstName: "Juan", LastName: "Perez"},
			{FirstName: "Ana", LastName: "Lopez"},
		},
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&Enrolled{}).Error; err != nil {
			return fmt.Errorf("delete students: %w", err)
		}
		if err := wipe.Delete(&Course{}).Error; err != nil {
			return fmt.Errorf("delete courses: %w", err)
		}
		if err := tx.Create(seeded).Error; err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return seeded, nil
}
