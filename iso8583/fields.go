package iso8583

// StandardFields is a registry of the data elements defined by [ISO] for the
// 1987 revision, which the later revisions largely share. Callers with
// network-specific layouts can merge this table into their own FieldMap or
// wrap it in a custom FieldSource.
var StandardFields = FieldMap{
	2:   {Name: "Primary Account Number", Length: 19, Variable: true, Format: "n"},
	3:   {Name: "Processing Code", Length: 6, Format: "n"},
	4:   {Name: "Amount, Transaction", Length: 12, Format: "n"},
	5:   {Name: "Amount, Settlement", Length: 12, Format: "n"},
	6:   {Name: "Amount, Cardholder Billing", Length: 12, Format: "n"},
	7:   {Name: "Transmission Date and Time", Length: 10, Format: "n"},
	8:   {Name: "Amount, Cardholder Billing Fee", Length: 8, Format: "n"},
	9:   {Name: "Conversion Rate, Settlement", Length: 8, Format: "n"},
	10:  {Name: "Conversion Rate, Cardholder Billing", Length: 8, Format: "n"},
	11:  {Name: "System Trace Audit Number", Length: 6, Format: "n"},
	12:  {Name: "Time, Local Transaction", Length: 6, Format: "n"},
	13:  {Name: "Date, Local Transaction", Length: 4, Format: "n"},
	14:  {Name: "Date, Expiration", Length: 4, Format: "n"},
	15:  {Name: "Date, Settlement", Length: 4, Format: "n"},
	16:  {Name: "Date, Conversion", Length: 4, Format: "n"},
	17:  {Name: "Date, Capture", Length: 4, Format: "n"},
	18:  {Name: "Merchant Type", Length: 4, Format: "n"},
	19:  {Name: "Acquiring Institution Country Code", Length: 3, Format: "n"},
	20:  {Name: "PAN Extended Country Code", Length: 3, Format: "n"},
	21:  {Name: "Forwarding Institution Country Code", Length: 3, Format: "n"},
	22:  {Name: "Point of Service Entry Mode", Length: 3, Format: "n"},
	23:  {Name: "Card Sequence Number", Length: 3, Format: "n"},
	24:  {Name: "Network International Identifier", Length: 3, Format: "n"},
	25:  {Name: "Point of Service Condition Code", Length: 2, Format: "n"},
	26:  {Name: "Point of Service Capture Code", Length: 2, Format: "n"},
	27:  {Name: "Authorizing Identification Response Length", Length: 1, Format: "n"},
	28:  {Name: "Amount, Transaction Fee", Length: 9, Format: "x+n"},
	29:  {Name: "Amount, Settlement Fee", Length: 9, Format: "x+n"},
	30:  {Name: "Amount, Transaction Processing Fee", Length: 9, Format: "x+n"},
	31:  {Name: "Amount, Settlement Processing Fee", Length: 9, Format: "x+n"},
	32:  {Name: "Acquiring Institution Identification Code", Length: 11, Variable: true, Format: "n"},
	33:  {Name: "Forwarding Institution Identification Code", Length: 11, Variable: true, Format: "n"},
	34:  {Name: "Primary Account Number, Extended", Length: 28, Variable: true, Format: "ns"},
	35:  {Name: "Track 2 Data", Length: 37, Variable: true, Format: "z"},
	36:  {Name: "Track 3 Data", Length: 104, Variable: true, Format: "n"},
	37:  {Name: "Retrieval Reference Number", Length: 12, Format: "an"},
	38:  {Name: "Authorization Identification Response", Length: 6, Format: "an"},
	39:  {Name: "Response Code", Length: 2, Format: "an"},
	40:  {Name: "Service Restriction Code", Length: 3, Format: "an"},
	41:  {Name: "Card Acceptor Terminal Identification", Length: 8, Format: "ans"},
	42:  {Name: "Card Acceptor Identification Code", Length: 15, Format: "ans"},
	43:  {Name: "Card Acceptor Name and Location", Length: 40, Format: "ans"},
	44:  {Name: "Additional Response Data", Length: 25, Variable: true, Format: "an"},
	45:  {Name: "Track 1 Data", Length: 76, Variable: true, Format: "an"},
	46:  {Name: "Additional Data, ISO", Length: 999, Variable: true, Format: "an"},
	47:  {Name: "Additional Data, National", Length: 999, Variable: true, Format: "an"},
	48:  {Name: "Additional Data, Private", Length: 999, Variable: true, Format: "an"},
	49:  {Name: "Currency Code, Transaction", Length: 3, Format: "n"},
	50:  {Name: "Currency Code, Settlement", Length: 3, Format: "n"},
	51:  {Name: "Currency Code, Cardholder Billing", Length: 3, Format: "n"},
	52:  {Name: "Personal Identification Number Data", Length: 16, Format: "b"},
	53:  {Name: "Security Related Control Information", Length: 16, Format: "n"},
	54:  {Name: "Additional Amounts", Length: 120, Variable: true, Format: "an"},
	55:  {Name: "Integrated Circuit Card Data", Length: 999, Variable: true, Format: "b"},
	56:  {Name: "Reserved, ISO", Length: 999, Variable: true, Format: "ans"},
	57:  {Name: "Reserved, National", Length: 999, Variable: true, Format: "ans"},
	58:  {Name: "Reserved, National", Length: 999, Variable: true, Format: "ans"},
	59:  {Name: "Reserved, National", Length: 999, Variable: true, Format: "ans"},
	60:  {Name: "Reserved, Private", Length: 999, Variable: true, Format: "ans"},
	61:  {Name: "Reserved, Private", Length: 999, Variable: true, Format: "ans"},
	62:  {Name: "Reserved, Private", Length: 999, Variable: true, Format: "ans"},
	63:  {Name: "Reserved, Private", Length: 999, Variable: true, Format: "ans"},
	64:  {Name: "Message Authentication Code", Length: 16, Format: "b"},
	66:  {Name: "Settlement Code", Length: 1, Format: "n"},
	67:  {Name: "Extended Payment Code", Length: 2, Format: "n"},
	68:  {Name: "Receiving Institution Country Code", Length: 3, Format: "n"},
	69:  {Name: "Settlement Institution Country Code", Length: 3, Format: "n"},
	70:  {Name: "Network Management Information Code", Length: 3, Format: "n"},
	71:  {Name: "Message Number", Length: 4, Format: "n"},
	72:  {Name: "Message Number, Last", Length: 4, Format: "n"},
	73:  {Name: "Date, Action", Length: 6, Format: "n"},
	74:  {Name: "Credits, Number", Length: 10, Format: "n"},
	75:  {Name: "Credits, Reversal Number", Length: 10, Format: "n"},
	76:  {Name: "Debits, Number", Length: 10, Format: "n"},
	77:  {Name: "Debits, Reversal Number", Length: 10, Format: "n"},
	78:  {Name: "Transfer, Number", Length: 10, Format: "n"},
	79:  {Name: "Transfer, Reversal Number", Length: 10, Format: "n"},
	80:  {Name: "Inquiries, Number", Length: 10, Format: "n"},
	81:  {Name: "Authorizations, Number", Length: 10, Format: "n"},
	82:  {Name: "Credits, Processing Fee Amount", Length: 12, Format: "n"},
	83:  {Name: "Credits, Transaction Fee Amount", Length: 12, Format: "n"},
	84:  {Name: "Debits, Processing Fee Amount", Length: 12, Format: "n"},
	85:  {Name: "Debits, Transaction Fee Amount", Length: 12, Format: "n"},
	86:  {Name: "Credits, Amount", Length: 16, Format: "n"},
	87:  {Name: "Credits, Reversal Amount", Length: 16, Format: "n"},
	88:  {Name: "Debits, Amount", Length: 16, Format: "n"},
	89:  {Name: "Debits, Reversal Amount", Length: 16, Format: "n"},
	90:  {Name: "Original Data Elements", Length: 42, Format: "n"},
	91:  {Name: "File Update Code", Length: 1, Format: "an"},
	92:  {Name: "File Security Code", Length: 2, Format: "an"},
	93:  {Name: "Response Indicator", Length: 5, Format: "an"},
	94:  {Name: "Service Indicator", Length: 7, Format: "an"},
	95:  {Name: "Replacement Amounts", Length: 42, Format: "an"},
	96:  {Name: "Message Security Code", Length: 16, Format: "b"},
	97:  {Name: "Amount, Net Settlement", Length: 17, Format: "x+n"},
	98:  {Name: "Payee", Length: 25, Format: "ans"},
	99:  {Name: "Settlement Institution Identification Code", Length: 11, Variable: true, Format: "n"},
	100: {Name: "Receiving Institution Identification Code", Length: 11, Variable: true, Format: "n"},
	101: {Name: "File Name", Length: 17, Variable: true, Format: "ans"},
	102: {Name: "Account Identification 1", Length: 28, Variable: true, Format: "ans"},
	103: {Name: "Account Identification 2", Length: 28, Variable: true, Format: "ans"},
	104: {Name: "Transaction Description", Length: 100, Variable: true, Format: "ans"},
	105: {Name: "Reserved for ISO Use", Length: 999, Variable: true, Format: "ans"},
	106: {Name: "Reserved for ISO Use", Length: 999, Variable: true, Format: "ans"},
	107: {Name: "Reserved for ISO Use", Length: 999, Variable: true, Format: "ans"},
	108: {Name: "Reserved for ISO Use", Length: 999, Variable: true, Format: "ans"},
	109: {Name: "Reserved for ISO Use", Length: 999, Variable: true, Format: "ans"},
	110: {Name: "Reserved for ISO Use", Length: 999, Variable: true, Format: "ans"},
	111: {Name: "Reserved for ISO Use", Length: 999, Variable: true, Format: "ans"},
	112: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	113: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	114: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	115: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	116: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	117: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	118: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	119: {Name: "Reserved for National Use", Length: 999, Variable: true, Format: "ans"},
	120: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	121: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	122: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	123: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	124: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	125: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	126: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	127: {Name: "Reserved for Private Use", Length: 999, Variable: true, Format: "ans"},
	128: {Name: "Message Authentication Code", Length: 16, Format: "b"},
}
