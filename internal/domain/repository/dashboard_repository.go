package repository

// DashboardCounts agregados da tela inicial.
type DashboardCounts struct {
	TotalParts        int
	LowStockParts     int
	OpenServiceOrders int
	PendingSales      int
}

// DashboardRepository consultas agregadas de leitura para o painel.
type DashboardRepository interface {
	Counts() (DashboardCounts, error)
}
