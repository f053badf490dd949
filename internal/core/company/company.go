// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package company manages the tech company catalogue kept in SQLite.
package company

import (
	"strings"

	"github.com/arokeji/library-api/internal/platform/collection"
)

// Company is a technology company.
type Company struct {
	ID              int    `json:"id"`
	Name            string `json:"name"                      validate:"required,max=100"`
	EmployeesNumber *int   `json:"employeesNumber,omitempty" validate:"omitempty,gte=0"`
	FoundedYear     *int   `json:"foundedYear,omitempty"     validate:"omitempty,gte=1800,lte=2100"`
	Headquarters    string `json:"headquarters"              validate:"max=100"`
	CEO             string `json:"ceo"                       validate:"max=100"`
}

// Patch lists the fields a company update may carry.
type Patch struct {
	Name            *string `json:"name"`
	EmployeesNumber *int    `json:"employeesNumber"`
	FoundedYear     *int    `json:"foundedYear"`
	Headquarters    *string `json:"headquarters"`
	CEO             *string `json:"ceo"`
}

// Apply implements collection.Patch.
func (p *Patch) Apply(company *Company) {
	if p.Name != nil {
		company.Name = *p.Name
	}
	if p.EmployeesNumber != nil {
		company.EmployeesNumber = p.EmployeesNumber
	}
	if p.FoundedYear != nil {
		company.FoundedYear = p.FoundedYear
	}
	if p.Headquarters != nil {
		company.Headquarters = *p.Headquarters
	}
	if p.CEO != nil {
		company.CEO = *p.CEO
	}
}

// Resource returns the collection rules for companies.
func Resource() collection.Resource[Company, int] {
	return collection.Resource[Company, int]{
		Name: "TechCompany",
		IDOf: func(company *Company) int { return company.ID },
		Normalize: func(company *Company) {
			company.Name = strings.TrimSpace(company.Name)
			company.Headquarters = strings.TrimSpace(company.Headquarters)
			company.CEO = strings.TrimSpace(company.CEO)
		},
	}
}
