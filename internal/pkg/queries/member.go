package queries

const (
	MembersTable = "Insurance.Members"

	GetAllMembers = `
		SELECT
			MemberID,
			MemberNumber,
			Title,
			FirstName,
			LastName,
			DateOfBirth,
			Gender,
			Email,
			MobilePhone,
			HomePhone,
			AddressLine1,
			AddressLine2,
			City,
			State,
			PostCode,
			Country,
			MedicareNumber,
			LHCLoadingPercentage,
			PHIRebateTier,
			JoinDate,
			IsActive
		FROM Insurance.Members
	`

	GetMemberByNumber = `
		SELECT
			MemberID,
			MemberNumber,
			Title,
			FirstName,
			LastName,
			DateOfBirth,
			Gender,
			Email,
			MobilePhone,
			HomePhone,
			AddressLine1,
			AddressLine2,
			City,
			State,
			PostCode,
			Country,
			MedicareNumber,
			LHCLoadingPercentage,
			PHIRebateTier,
			JoinDate,
			IsActive
		FROM Insurance.Members
		WHERE MemberNumber = @p1
	`

	CountMembers = "SELECT COUNT(*) AS Total FROM Insurance.Members"

	GetMemberNumbers = "SELECT MemberNumber FROM Insurance.Members"

	UpdateMemberContact = `
		UPDATE Insurance.Members
		SET Email = @p1, MobilePhone = @p2, AddressLine1 = @p3, LastModified = GETDATE()
		WHERE MemberNumber = @p4
	`
)
