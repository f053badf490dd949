// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arokeji/library-api/internal/core/course"
)

func TestSeed_ReplacesEverything(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	old, err := service.Create(ctx, &course.Course{Name: "Historia"})
	require.NoError(t, err)
	enroll(t, db, old.ID, "Lucia")

	// Seeding twice leaves exactly one copy.
	_, err = course.Seed(ctx, db)
	require.NoError(t, err)
	seeded, err := course.Seed(ctx, db)
	require.NoError(t, err)

	var courses int64
	require.NoError(t, db.Model(&course.Course{}).Count(&courses).Error)
	assert.Equal(t, int64(1), courses)

	found, err := service.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Números", found.Department)
	require.Len(t, found.Students, 2)
	assert.Equal(t, "Juan", found.Students[0].FirstName)
	assert.Equal(t, "Lopez", found.Students[1].LastName)
}
