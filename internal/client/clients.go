package client

type Clients struct {
	*OpenTDBAPI
}

func InitClients() Clients {
	return Clients{
		OpenTDBAPI: NewOpenTDBAPI(),
	}
}
