package ports

type RosterPort interface {
	Logins() ([]string, error)
}
