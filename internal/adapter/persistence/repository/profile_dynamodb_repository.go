package repository

import (
	"context"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"
)

const defaultProfilesTableName = "user_profiles"

type addressItem struct {
	Name1   string `dynamodbav:"name1,omitempty"`
	Name2   string `dynamodbav:"name2,omitempty"`
	Name3   string `dynamodbav:"name3,omitempty"`
	Name4   string `dynamodbav:"name4,omitempty"`
	Street  string `dynamodbav:"street,omitempty"`
	ZipCode string `dynamodbav:"zip_code,omitempty"`
	City    string `dynamodbav:"city,omitempty"`
	Country string `dynamodbav:"country,omitempty"`
}

type communicationItem struct {
	Email         string `dynamodbav:"email,omitempty"`
	PhoneLandline string `dynamodbav:"phone_landline,omitempty"`
	PhoneMobile   string `dynamodbav:"phone_mobile,omitempty"`
	Fax           string `dynamodbav:"fax,omitempty"`
	URL           string `dynamodbav:"url,omitempty"`
}

type profileItem struct {
	UserID          string            `dynamodbav:"user_id"`
	ID              string            `dynamodbav:"id"`
	Address         addressItem       `dynamodbav:"address"`
	Communication   communicationItem `dynamodbav:"communication"`
	Language        string            `dynamodbav:"language"`
	DailyRate       string            `dynamodbav:"daily_rate"`
	Job             string            `dynamodbav:"job,omitempty"`
	PersonnelNo     string            `dynamodbav:"personnel_no,omitempty"`
	HoursPerWeek    string            `dynamodbav:"hours_per_week,omitempty"`
	HolidaysPerYear string            `dynamodbav:"holidays_per_year,omitempty"`
	auditItem
}

// UserProfileDynamoRepository persists UserProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// Keying by user enforces one profile per user.

type UserProfileDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserProfileRepository = (*UserProfileDynamoRepository)(nil)

func NewUserProfileDynamoRepository(ddb DynamoAPI) *UserProfileDynamoRepository {
	return &UserProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USER_PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *UserProfileDynamoRepository) Create(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	ok, err := putNew(ctx, r.ddb, r.tableName, "user_id", toProfileItem(p))
	if err != nil {
		return entities.UserProfile{}, err
	}
	if !ok {
		return entities.UserProfile{}, interfaces.ErrAlreadyExists
	}
	return p, nil
}

func (r *UserProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.UserProfile, error) {
	it, found, err := getItem[profileItem](ctx, r.ddb, r.tableName, stringKey("user_id", userID))
	if err != nil || !found {
		return entities.UserProfile{}, err
	}
	return fromProfileItem(it), nil
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		Name1: a.Name1, Name2: a.Name2, Name3: a.Name3, Name4: a.Name4,
		Street: a.Street, ZipCode: a.ZipCode, City: a.City, Country: a.Country,
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		Name1: it.Name1, Name2: it.Name2, Name3: it.Name3, Name4: it.Name4,
		Street: it.Street, ZipCode: it.ZipCode, City: it.City, Country: it.Country,
	}
}

func toCommunicationItem(c entities.Communication) communicationItem {
	return communicationItem{
		Email:         c.Email,
		PhoneLandline: c.PhoneLandline,
		PhoneMobile:   c.PhoneMobile,
		Fax:           c.Fax,
		URL:           c.URL,
	}
}

func fromCommunicationItem(it communicationItem) entities.Communication {
	return entities.Communication{
		Email:         it.Email,
		PhoneLandline: it.PhoneLandline,
		PhoneMobile:   it.PhoneMobile,
		Fax:           it.Fax,
		URL:           it.URL,
	}
}

func toProfileItem(p entities.UserProfile) profileItem {
	return profileItem{
		UserID:          p.UserID,
		ID:              p.ID,
		Address:         toAddressItem(p.Address),
		Communication:   toCommunicationItem(p.Communication),
		Language:        p.Language,
		DailyRate:       p.DailyRate.String(),
		Job:             p.Job,
		PersonnelNo:     p.PersonnelNo,
		HoursPerWeek:    formatNullDecimal(p.HoursPerWeek),
		HolidaysPerYear: formatNullDecimal(p.HolidaysPerYear),
		auditItem:       toAuditItem(p.Audit),
	}
}

func fromProfileItem(it profileItem) entities.UserProfile {
	return entities.UserProfile{
		ID:              it.ID,
		UserID:          it.UserID,
		Address:         fromAddressItem(it.Address),
		Communication:   fromCommunicationItem(it.Communication),
		Language:        it.Language,
		DailyRate:       parseDecimal(it.DailyRate),
		Job:             it.Job,
		PersonnelNo:     it.PersonnelNo,
		HoursPerWeek:    parseNullDecimal(it.HoursPerWeek),
		HolidaysPerYear: parseNullDecimal(it.HolidaysPerYear),
		Audit:           fromAuditItem(it.auditItem),
	}
}
