package models

// Category classifies payables and receivables. Values match the wire format
// used by the web dashboard, so they stay in pt-BR.
type Category string

const (
	CategoryFood      Category = "alimentacao"
	CategoryTransport Category = "transporte"
	CategoryHousing   Category = "moradia"
	CategoryHealth    Category = "saude"
	CategoryEducation Category = "educacao"
	CategoryLeisure   Category = "lazer"
	CategoryOther     Category = "outros"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryHousing, CategoryHealth,
		CategoryEducation, CategoryLeisure, CategoryOther:
		return true
	}
	return false
}

// RecordStatus is the lifecycle of a payable or receivable.
type RecordStatus string

const (
	StatusPending   RecordStatus = "pendente"
	StatusPaid      RecordStatus = "pago"
	StatusOverdue   RecordStatus = "vencido"
	StatusCancelled RecordStatus = "cancelado"
)

func (s RecordStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// GoalStatus is the lifecycle of a savings goal. Completed/active flips are
// automatic on threshold crossings; paused/cancelled are set only by explicit
// updates.
type GoalStatus string

const (
	GoalActive    GoalStatus = "ativa"
	GoalCompleted GoalStatus = "concluida"
	GoalPaused    GoalStatus = "pausada"
	GoalCancelled GoalStatus = "cancelada"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalPaused, GoalCancelled:
		return true
	}
	return false
}

// InvestmentType mirrors the product types offered by Brazilian brokers.
type InvestmentType string

const (
	InvestmentSavings InvestmentType = "poupanca"
	InvestmentCDB     InvestmentType = "cdb"
	InvestmentLCI     InvestmentType = "lci"
	InvestmentLCA     InvestmentType = "lca"
	InvestmentFunds   InvestmentType = "fundos"
	InvestmentStocks  InvestmentType = "acoes"
	InvestmentCrypto  InvestmentType = "cripto"
	InvestmentOther   InvestmentType = "outros"
)

func (t InvestmentType) Valid() bool {
	switch t {
	case InvestmentSavings, InvestmentCDB, InvestmentLCI, InvestmentLCA,
		InvestmentFunds, InvestmentStocks, InvestmentCrypto, InvestmentOther:
		return true
	}
	return false
}
