package members

import (
	"aushealthsim/internal/app/contracts"
	"aushealthsim/internal/pkg/exceptions"
	"aushealthsim/internal/pkg/models"
	"aushealthsim/internal/pkg/queries"
	"context"
	"database/sql"
	"sync"
	"time"

	"go.uber.org/zap"
)

type memberMssqlRepository struct {
	DB  *sql.DB
	SQL contracts.SQLClient
	Log *zap.Logger
}

var (
	memberMssqlRepositoryInstance contracts.MemberRepository
	onceMemberMssqlRepository     sync.Once
)

func NewMemberMssqlRepository(db *sql.DB, sqlClient contracts.SQLClient, logger *zap.Logger) contracts.MemberRepository {
	onceMemberMssqlRepository.Do(func() {
		instance := &memberMssqlRepository{
			DB:  db,
			SQL: sqlClient,
			Log: logger,
		}
		memberMssqlRepositoryInstance = instance
	})
	return memberMssqlRepositoryInstance
}

func (r *memberMssqlRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllMembers)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return members, nil
}

func (r *memberMssqlRepository) FindByNumber(ctx context.Context, memberNumber string) (*models.Member, error) {
	row := r.DB.QueryRowContext(ctx, queries.GetMemberByNumber, memberNumber)
	member, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberMssqlRepository) FindNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetMemberNumbers)
	if err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, exceptions.ErrDatabaseQuery(err)
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrDatabaseQuery(err)
	}

	return numbers, nil
}

func (r *memberMssqlRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, queries.CountMembers).Scan(&total); err != nil {
		return 0, exceptions.ErrDatabaseQuery(err)
	}
	return total, nil
}

func (r *memberMssqlRepository) BulkInsert(ctx context.Context, members []models.Member, asOf time.Time) (int, error) {
	rows := make([]map[string]any, 0, len(members))
	for _, member := range members {
		rows = append(rows, member.ToRow())
	}
	return r.SQL.BulkInsertAsOf(ctx, asOf, queries.MembersTable, rows)
}

func (r *memberMssqlRepository) UpdateContact(ctx context.Context, member models.Member, asOf time.Time) error {
	_, err := r.SQL.NonQueryAsOf(ctx, asOf, queries.UpdateMemberContact,
		member.Email, member.MobilePhone, member.AddressLine1, member.MemberNumber)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (models.Member, error) {
	var (
		member         models.Member
		title          sql.NullString
		email          sql.NullString
		mobilePhone    sql.NullString
		homePhone      sql.NullString
		addressLine2   sql.NullString
		medicareNumber sql.NullString
		lhcLoading     sql.NullFloat64
		rebateTier     sql.NullString
		joinDate       sql.NullTime
	)

	err := row.Scan(
		&member.MemberID,
		&member.MemberNumber,
		&title,
		&member.FirstName,
		&member.LastName,
		&member.DateOfBirth,
		&member.Gender,
		&email,
		&mobilePhone,
		&homePhone,
		&member.AddressLine1,
		&addressLine2,
		&member.City,
		&member.State,
		&member.PostCode,
		&member.Country,
		&medicareNumber,
		&lhcLoading,
		&rebateTier,
		&joinDate,
		&member.IsActive,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Member{}, err
		}
		return models.Member{}, exceptions.ErrDatabaseQuery(err)
	}

	member.Title = title.String
	member.Email = email.String
	member.MobilePhone = mobilePhone.String
	member.HomePhone = homePhone.String
	member.AddressLine2 = addressLine2.String
	member.MedicareNumber = medicareNumber.String
	member.LHCLoadingPercentage = lhcLoading.Float64
	member.PHIRebateTier = models.RebateTier(rebateTier.String)
	if joinDate.Valid {
		join := joinDate.Time
		member.JoinDate = &join
	}
	return member, nil
}
