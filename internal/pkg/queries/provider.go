package queries

const (
	ProvidersTable = "Insurance.Providers"

	GetAllProviders = `
		SELECT
			ProviderID,
			ProviderNumber,
			ProviderName,
			ProviderType,
			AddressLine1,
			AddressLine2,
			City,
			State,
			PostCode,
			Country,
			Phone,
			Email,
			IsPreferredProvider,
			AgreementStartDate,
			AgreementEndDate,
			IsActive
		FROM Insurance.Providers
	`

	GetProviderByNumber = `
		SELECT
			ProviderID,
			ProviderNumber,
			ProviderName,
			ProviderType,
			AddressLine1,
			AddressLine2,
			City,
			State,
			PostCode,
			Country,
			Phone,
			Email,
			IsPreferredProvider,
			AgreementStartDate,
			AgreementEndDate,
			IsActive
		FROM Insurance.Providers
		WHERE ProviderNumber = @p1
	`

	CountProviders = "SELECT COUNT(*) AS Total FROM Insurance.Providers"
)
