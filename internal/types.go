package internal

type Issuer string

const (
	IssuerICICI   Issuer = "ICICI Bank"
	IssuerAxis    Issuer = "Axis Bank"
	IssuerIDFC    Issuer = "IDFC FIRST Bank"
	IssuerRBL     Issuer = "RBL Bank"
	IssuerAmex    Issuer = "American Express"
	IssuerUnknown Issuer = "Unknown"
)

type ParseStatus string

const (
	StatusSuccess ParseStatus = "success"
	StatusPartial ParseStatus = "partial"
	StatusFailed  ParseStatus = "failed"
)

type Field string

const (
	FieldCardNumber       Field = "card_number"
	FieldStatementDate    Field = "statement_date"
	FieldPaymentDueDate   Field = "payment_due_date"
	FieldTotalAmountDue   Field = "total_amount_due"
	FieldMinimumAmountDue Field = "minimum_amount_due"
	FieldCreditLimit      Field = "credit_limit"
	FieldAvailableCredit  Field = "available_credit"
	FieldPreviousBalance  Field = "previous_balance"
)

var MandatoryFields = []Field{
	FieldCardNumber,
	FieldStatementDate,
	FieldPaymentDueDate,
	FieldTotalAmountDue,
}

type Document struct {
	Name  string
	Pages []string
}

type StatementRecord struct {
	FileName         string      `json:"file_name"`
	Issuer           Issuer      `json:"issuer"`
	CardNumber       *string     `json:"card_number"`
	StatementDate    *string     `json:"statement_date"`
	PaymentDueDate   *string     `json:"payment_due_date"`
	TotalAmountDue   *string     `json:"total_amount_due"`
	MinimumAmountDue *string     `json:"minimum_amount_due"`
	CreditLimit      *string     `json:"credit_limit"`
	AvailableCredit  *string     `json:"available_credit"`
	PreviousBalance  *string     `json:"previous_balance"`
	ParsingStatus    ParseStatus `json:"parsing_status"`
	Errors           []string    `json:"errors"`
}

func (r *StatementRecord) FieldValue(f Field) *string {
	switch f {
	case FieldCardNumber:
		return r.CardNumber
	case FieldStatementDate:
		return r.StatementDate
	case FieldPaymentDueDate:
		return r.PaymentDueDate
	case FieldTotalAmountDue:
		return r.TotalAmountDue
	case FieldMinimumAmountDue:
		return r.MinimumAmountDue
	case FieldCreditLimit:
		return r.CreditLimit
	case FieldAvailableCredit:
		return r.AvailableCredit
	case FieldPreviousBalance:
		return r.PreviousBalance
	}
	return nil
}

func (r *StatementRecord) SetField(f Field, value string) {
	v := value
	switch f {
	case FieldCardNumber:
		r.CardNumber = &v
	case FieldStatementDate:
		r.StatementDate = &v
	case FieldPaymentDueDate:
		r.PaymentDueDate = &v
	case FieldTotalAmountDue:
		r.TotalAmountDue = &v
	case FieldMinimumAmountDue:
		r.MinimumAmountDue = &v
	case FieldCreditLimit:
		r.CreditLimit = &v
	case FieldAvailableCredit:
		r.AvailableCredit = &v
	case FieldPreviousBalance:
		r.PreviousBalance = &v
	}
}

type FetchedMailMessage struct {
	Provider   string
	MessageID  string
	Subject    string
	From       string
	ReceivedAt string
	Raw        []byte
}
