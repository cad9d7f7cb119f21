package repository

import (
	"inhouse/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func stringAttr(name string) database.KeyAttr {
	return database.KeyAttr{Name: name, Type: types.ScalarAttributeTypeS}
}

func numberAttr(name string) *database.KeyAttr {
	return &database.KeyAttr{Name: name, Type: types.ScalarAttributeTypeN}
}

// Tables describes every table used by the repositories, with the names
// resolved from the environment.
func Tables() []database.TableSpec {
	byProject := database.IndexSpec{Name: "project_id-index", Hash: stringAttr("project_id")}
	return []database.TableSpec{
		{Name: positionsTableName(), Hash: stringAttr("scope"), Range: numberAttr("position")},
		{
			Name:    getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
			Hash:    stringAttr("id"),
			Indexes: []database.IndexSpec{{Name: projectsKeyIndex, Hash: stringAttr("key")}},
		},
		{
			Name:    getenvDefault("PROJECT_STEPS_TABLE", defaultProjectStepsTableName),
			Hash:    stringAttr("id"),
			Indexes: []database.IndexSpec{byProject},
		},
		{Name: getenvDefault("DAYS_TABLE", defaultDaysTableName), Hash: stringAttr("id")},
		{
			Name: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
			Hash: stringAttr("id"),
			Indexes: []database.IndexSpec{
				{Name: bookingsDayIDIndex, Hash: stringAttr("day_id"), Range: numberAttr("position")},
				{Name: bookingsProjectIDIndex, Hash: stringAttr("project_id")},
				{Name: bookingsInvoiceIDIndex, Hash: stringAttr("invoice_id")},
			},
		},
		{
			Name:    getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
			Hash:    stringAttr("id"),
			Indexes: []database.IndexSpec{byProject},
		},
		{Name: getenvDefault("TIMERS_TABLE", defaultTimersTableName), Hash: stringAttr("id")},
		{Name: getenvDefault("STARS_TABLE", defaultStarsTableName), Hash: stringAttr("owner"), Range: &database.KeyAttr{Name: "object_id", Type: types.ScalarAttributeTypeS}},
		{Name: getenvDefault("USER_PROFILES_TABLE", defaultProfilesTableName), Hash: stringAttr("user_id")},
		{Name: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName), Hash: stringAttr("id")},
	}
}
