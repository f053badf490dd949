// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arokeji/library-api/internal/core/student"
	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/orm"
	"github.com/arokeji/library-api/internal/platform/sec"
	"github.com/arokeji/library-api/pkg/pointer"
)

func newService(t *testing.T) (*student.Service, *gorm.DB) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := orm.Open(context.Background(), sqlite.Open(filepath.Join(t.TempDir(), "students.db")), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = orm.Close(db) })

	require.NoError(t, db.AutoMigrate(&student.CourseSummary{}, &student.Student{}))

	return student.NewService(student.NewGormStore(db), sec.NewAccessPolicy("admin@gmail.com")), db
}

func addCourse(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	row := student.CourseSummary{Name: name, Department: "Números"}
	require.NoError(t, db.Create(&row).Error)
	return row.ID
}

func TestGormStore_CreateWithCourse(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()
	courseID := addCourse(t, db, "Matemáticas")

	created, err := service.Create(ctx, &student.Student{FirstName: " Juan ", LastName: "Perez", CourseID: pointer.To(courseID)})
	require.NoError(t, err)

	assert.Equal(t, "Juan", created.FirstName)
	require.NotNil(t, created.Course)
	assert.Equal(t, "Matemáticas", created.Course.Name)
}

func TestGormStore_UnknownCourse(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, &student.Student{FirstName: "Juan", LastName: "Perez", CourseID: pointer.To(7)})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
	assert.Equal(t, "Course not found", err.Error())

	var count int64
	require.NoError(t, db.Model(&student.Student{}).Count(&count).Error)
	assert.Zero(t, count)

	created, err := service.Create(ctx, &student.Student{FirstName: "Juan", LastName: "Perez"})
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, nil, &student.Patch{CourseID: pointer.To(7)})
	assert.Equal(t, "Course not found", err.Error())
}

func TestGormStore_Validation(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Create(context.Background(), &student.Student{FirstName: "Juan"})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeValidation, appError.Code)
	assert.Equal(t, "lastName", appError.Details[0].Field)
}

func TestGormStore_SearchByFirstName(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	for _, name := range []string{"Ana", "ANDRES", "Juan"} {
		_, err := service.Create(ctx, &student.Student{FirstName: name, LastName: "Lopez"})
		require.NoError(t, err)
	}

	found, err := service.FindByNamePrefix(ctx, "an")
	require.NoError(t, err)

	names := []string{}
	for _, item := range found {
		names = append(names, item.FirstName)
	}
	assert.ElementsMatch(t, []string{"Ana", "ANDRES"}, names)
}

func TestGormStore_MoveAndDelete(t *testing.T) {
	service, db := newService(t)
	ctx := context.Background()
	first := addCourse(t, db, "Matemáticas")
	second := addCourse(t, db, "Historia")

	created, err := service.Create(ctx, &student.Student{FirstName: "Ana", LastName: "Lopez", CourseID: pointer.To(first)})
	require.NoError(t, err)

	moved, err := service.Update(ctx, created.ID, nil, &student.Patch{CourseID: pointer.To(second)})
	require.NoError(t, err)
	assert.Equal(t, "Historia", moved.Course.Name)
	assert.Equal(t, "Lopez", moved.LastName)

	deleted, err := service.Delete(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ana", deleted.FirstName)

	_, err = service.GetByID(ctx, created.ID)
	assert.Equal(t, "Student not found", err.Error())
}

func TestHTTP_Student(t *testing.T) {
	service, db := newService(t)
	courseID := addCourse(t, db, "Matemáticas")

	router := chi.NewRouter()
	router.Route("/student", student.NewHandler(service).RegisterRoutes)

	call := func(method, target, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
		return recorder
	}

	recorder := call(http.MethodPost, "/student", `{"firstName":"Juan","lastName":"Perez","courseId":`+strconv.Itoa(courseID)+`}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	assert.Contains(t, recorder.Body.String(), `"course":{"id":`+strconv.Itoa(courseID))

	recorder = call(http.MethodPost, "/student", `{"firstName":"Ana","lastName":"Lopez","courseId":999}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Course not found","code":"NOT_FOUND"}`, recorder.Body.String())

	recorder = call(http.MethodGet, "/student/name/ju", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"firstName":"Juan"`)
}
