package seeding

import (
	"aushealthsim/internal/pkg/constvars"
	"aushealthsim/internal/pkg/models"
	"aushealthsim/internal/pkg/utils"
	"fmt"
	"strings"
	"time"
)

var hospitalNameTemplates = []string{
	"Royal %[1]s Hospital",
	"%[1]s Private Hospital",
	"%[1]s General Hospital",
	"St John's Hospital %[1]s",
	"%[1]s Memorial Hospital",
	"Northern %[1]s Hospital",
	"Southern %[1]s Hospital",
	"Eastern %[1]s Hospital",
	"Western %[1]s Hospital",
	"%[1]s Community Hospital",
}

var practiceNameTemplates = []string{
	"%[1]s %[2]s Centre",
	"%[1]s %[2]s Clinic",
	"%[2]s Care %[1]s",
	"%[1]s %[2]s Associates",
	"Central %[1]s %[2]s",
	"%[1]s %[2]s Practice",
	"%[2]s Specialists of %[1]s",
	"%[1]s %[2]s Group",
	"Premier %[2]s %[1]s",
	"Advanced %[2]s %[1]s",
}

var specialistFields = []string{
	"Cardiology", "Orthopedic", "Dermatology", "Neurology", "Oncology",
	"Gynecology", "Urology", "ENT", "Ophthalmology",
}

var australianCities = []string{
	"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Hobart", "Darwin", "Canberra",
	"Gold Coast", "Newcastle", "Wollongong", "Geelong", "Townsville", "Cairns", "Toowoomba",
	"Ballarat", "Bendigo", "Launceston", "Mackay", "Rockhampton", "Bunbury", "Bundaberg",
	"Hervey Bay", "Wagga Wagga", "Coffs Harbour", "Gladstone", "Mildura", "Shepparton",
	"Port Macquarie", "Albury", "Wodonga", "Warrnambool", "Orange", "Geraldton", "Dubbo",
}

// generateProviders builds a mix of hospitals, GPs, specialists and
// allied health practices. Small counts still produce the minimum mix of
// hospitals, GPs and specialists. Numbers in taken are never reissued,
// keeping reseeding runs clear of the unique provider number key.
func generateProviders(count int, asOf time.Time, taken map[string]bool) ([]models.Provider, error) {
	hospitalCount := max(5, count/10)
	specialistCount := max(10, count/5)
	gpCount := max(10, count/5)
	otherCount := count - hospitalCount - specialistCount - gpCount

	var providers []models.Provider

	for i := 0; i < hospitalCount; i++ {
		city := australianCities[randomIndex(len(australianCities))]
		name := fmt.Sprintf(hospitalNameTemplates[randomIndex(len(hospitalNameTemplates))], city)
		address := fmt.Sprintf("%d %s Road", randomBetween(1, 500),
			[]string{"Hospital", "Medical Centre", "Health"}[randomIndex(3)])

		provider, err := buildProvider(name, "Hospital", address, city, asOf, 0.8, 0.8, taken)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	for i := 0; i < gpCount; i++ {
		city := australianCities[randomIndex(len(australianCities))]
		name := fmt.Sprintf(practiceNameTemplates[randomIndex(len(practiceNameTemplates))], city, "Medical")
		address := fmt.Sprintf("%d %s Street", randomBetween(1, 500),
			[]string{"Main", "High", "Park", "Church", "Station"}[randomIndex(5)])

		provider, err := buildProvider(name, "General Practitioner", address, city, asOf, 0.5, 0.6, taken)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	for i := 0; i < specialistCount; i++ {
		city := australianCities[randomIndex(len(australianCities))]
		field := specialistFields[randomIndex(len(specialistFields))]
		name := fmt.Sprintf(practiceNameTemplates[randomIndex(len(practiceNameTemplates))], city, field)
		address := fmt.Sprintf("%d %s Centre", randomBetween(1, 500),
			[]string{"Specialist", "Medical", "Health", "Professional"}[randomIndex(4)])

		provider, err := buildProvider(name, "Specialist - "+field, address, city, asOf, 0.7, 0.7, taken)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	// Allied health fills whatever the minimums left over.
	alliedTypes := constvars.ProviderTypes[3:]
	for i := 0; i < otherCount; i++ {
		city := australianCities[randomIndex(len(australianCities))]
		providerType := alliedTypes[randomIndex(len(alliedTypes))]
		name := fmt.Sprintf(practiceNameTemplates[randomIndex(len(practiceNameTemplates))], city, providerType)
		address := fmt.Sprintf("%d %s Street", randomBetween(1, 500),
			[]string{"Main", "High", "Park", "Church", "Station"}[randomIndex(5)])

		provider, err := buildProvider(name, providerType, address, city, asOf, 0.4, 0.5, taken)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

func buildProvider(name, providerType, address, city string, asOf time.Time, preferredChance, ongoingChance float64, taken map[string]bool) (models.Provider, error) {
	providerNumber, err := utils.GenerateProviderNumber()
	if err != nil {
		return models.Provider{}, err
	}
	for taken[providerNumber] {
		if providerNumber, err = utils.GenerateProviderNumber(); err != nil {
			return models.Provider{}, err
		}
	}
	taken[providerNumber] = true

	provider := models.Provider{
		ProviderNumber: providerNumber,
		ProviderName:   name,
		ProviderType:   providerType,
		AddressLine1:   address,
		City:           city,
		State:          randomStateCode(),
		PostCode:       fmt.Sprintf("%d", randomBetween(2000, 7000)),
		Country:        "Australia",
		Phone:          fmt.Sprintf("0%d%04d%04d", randomBetween(2, 9), randomBetween(1000, 9999), randomBetween(1000, 9999)),
		Email:          fmt.Sprintf("info@%s.com.au", strings.ToLower(strings.ReplaceAll(name, " ", ""))),
		IsActive:       true,
	}

	if randomChance(preferredChance) {
		provider.IsPreferredProvider = true
		start := asOf.AddDate(0, 0, -randomBetween(30, 730))
		provider.AgreementStartDate = &start
		if randomChance(ongoingChance) {
			end := asOf.AddDate(0, 0, randomBetween(30, 1095))
			provider.AgreementEndDate = &end
		}
	}

	return provider, nil
}
