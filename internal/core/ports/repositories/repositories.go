package repositories

// RepositoryProvider bundles every repository implementation behind the
// port interfaces, for wiring at startup.
type RepositoryProvider struct {
	AccountRepo      AccountRepository
	OrganizationRepo OrganizationRepository
}
