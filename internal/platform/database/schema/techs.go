// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// TechsTable represents the 'techs' table of the SQLite catalogue
type TechsTable struct {
	Table           string
	ID              string
	Name            string
	EmployeesNumber string
	FoundedYear     string
	Headquarters    string
	CEO             string
}

// Techs is the schema definition for techs
var Techs = TechsTable{
	Table:           "techs",
	ID:              "id",
	Name:            "name",
	EmployeesNumber: "employees_number",
	FoundedYear:     "founded_year",
	Headquarters:    "headquarters",
	CEO:             "ceo",
}

// Columns lists every column in scan order.
func (t TechsTable) Columns() []string {
	return []string{t.ID, t.Name, t.EmployeesNumber, t.FoundedYear, t.Headquarters, t.CEO}
}
