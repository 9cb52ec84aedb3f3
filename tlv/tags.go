package tlv

// Tag classes used in StandardTags, naming the party that supplies the data object.
const (
	ClassICC      = "ICC"
	ClassTerminal = "Terminal"
	ClassIssuer   = "Issuer"
)

// StandardTags is a registry of the common EMV tags according to [EMV] Annex A.
// Callers with proprietary tags can merge this table into their own TagMap or
// wrap it in a custom TagSource.
var StandardTags = TagMap{
	"42":   {Name: "Issuer Identification Number", Format: Primitive, Class: ClassIssuer, MinLength: 3, MaxLength: 3},
	"4F":   {Name: "Application Identifier (AID)", Format: Primitive, Class: ClassICC, MinLength: 5, MaxLength: 16},
	"50":   {Name: "Application Label", Format: Primitive, Class: ClassICC, MinLength: 1, MaxLength: 16},
	"57":   {Name: "Track 2 Equivalent Data", Format: Primitive, Class: ClassICC, MaxLength: 19},
	"5A":   {Name: "Application Primary Account Number (PAN)", Format: Primitive, Class: ClassICC, MaxLength: 10},
	"5F20": {Name: "Cardholder Name", Format: Primitive, Class: ClassICC, MinLength: 2, MaxLength: 26},
	"5F24": {Name: "Application Expiration Date", Format: Primitive, Class: ClassICC, MinLength: 3, MaxLength: 3},
	"5F25": {Name: "Application Effective Date", Format: Primitive, Class: ClassICC, MinLength: 3, MaxLength: 3},
	"5F28": {Name: "Issuer Country Code", Format: Primitive, Class: ClassICC, MinLength: 2, MaxLength: 2},
	"5F2A": {Name: "Transaction Currency Code", Format: Primitive, Class: ClassTerminal, MinLength: 2, MaxLength: 2},
	"5F2D": {Name: "Language Preference", Format: Primitive, Class: ClassICC, MinLength: 2, MaxLength: 8},
	"5F30": {Name: "Service Code", Format: Primitive, Class: ClassICC, MinLength: 2, MaxLength: 2},
	"5F34": {Name: "Application PAN Sequence Number", Format: Primitive, Class: ClassICC, MinLength: 1, MaxLength: 1},
	"5F50": {Name: "Issuer URL", Format: Primitive, Class: ClassIssuer},
	"61":   {Name: "Application Template", Format: Constructed, Class: ClassICC},
	"6F":   {Name: "File Control Information (FCI) Template", Format: Constructed, Class: ClassICC},
	"70":   {Name: "Record Template", Format: Constructed, Class: ClassICC},
	"77":   {Name: "Response Message Template Format 2", Format: Constructed, Class: ClassICC},
	"80":   {Name: "Response Message Template Format 1", Format: Primitive, Class: ClassICC},
	"82":   {Name: "Application Interchange Profile", Format: Primitive, Class: ClassICC, MinLength: 2, MaxLength: 2},
	"84":   {Name: "Dedicated File (DF) Name", Format: Primitive, Class: ClassICC, MinLength: 5, MaxLength: 16},
	"87":   {Name: "Application Priority Indicator", Format: Primitive, Class: ClassICC, MinLength: 1, MaxLength: 1},
	"88":   {Name: "Short File Identifier (SFI)", Format: Primitive, Class: ClassICC, MinLength: 1, MaxLength: 1},
	"8A":   {Name: "Authorisation Response Code", Format: Primitive, Class: ClassIssuer, MinLength: 2, MaxLength: 2},
	"8C":   {Name: "Card Risk Management Data Object List 1 (CDOL1)", Format: Primitive, Class: ClassICC, MaxLength: 252},
	"8D":   {Name: "Card Risk Management Data Object List 2 (CDOL2)", Format: Primitive, Class: ClassICC, MaxLength: 252},
	"8E":   {Name: "Cardholder Verification Method (CVM) List", Format: Primitive, Class: ClassICC, MaxLength: 252},
	"8F":   {Name: "Certification Authority Public Key Index", Format: Primitive, Class: ClassICC, MinLength: 1, MaxLength: 1},
	"90":   {Name: "Issuer Public Key Certificate", Format: Primitive, Class: ClassICC},
	"94":   {Name: "Application File Locator (AFL)", Format: Primitive, Class: ClassICC, MaxLength: 252},
	"95":   {Name: "Terminal Verification Results (TVR)", Format: Primitive, Class: ClassTerminal, MinLength: 5, MaxLength: 5},
	"9A":   {Name: "Transaction Date", Format: Primitive, Class: ClassTerminal, MinLength: 3, MaxLength: 3},
	"9B":   {Name: "Transaction Status Information (TSI)", Format: Primitive, Class: ClassTerminal, MinLength: 2, MaxLength: 2},
	"9C":   {Name: "Transaction Type", Format: Primitive, Class: ClassTerminal, MinLength: 1, MaxLength: 1},
	"9F02": {Name: "Amount, Authorised (Numeric)", Format: Primitive, Class: ClassTerminal, MinLength: 6, MaxLength: 6},
	"9F03": {Name: "Amount, Other (Numeric)", Format: Primitive, Class: ClassTerminal, MinLength: 6, MaxLength: 6},
	"9F06": {Name: "Application Identifier (AID), Terminal", Format: Primitive, Class: ClassTerminal, MinLength: 5, MaxLength: 16},
	"9F07": {Name: "Application Usage Control", Format: Primitive, Class: ClassICC, MinLength: 2, MaxLength: 2},
	"9F0D": {Name: "Issuer Action Code - Default", Format: Primitive, Class: ClassICC, MinLength: 5, MaxLength: 5},
	"9F0E": {Name: "Issuer Action Code - Denial", Format: Primitive, Class: ClassICC, MinLength: 5, MaxLength: 5},
	"9F0F": {Name: "Issuer Action Code - Online", Format: Primitive, Class: ClassICC, MinLength: 5, MaxLength: 5},
	"9F10": {Name: "Issuer Application Data", Format: Primitive, Class: ClassICC, MaxLength: 32},
	"9F1A": {Name: "Terminal Country Code", Format: Primitive, Class: ClassTerminal, MinLength: 2, MaxLength: 2},
	"9F26": {Name: "Application Cryptogram", Format: Primitive, Class: ClassICC, MinLength: 8, MaxLength: 8},
	"9F27": {Name: "Cryptogram Information Data", Format: Primitive, Class: ClassICC, MinLength: 1, MaxLength: 1},
	"9F33": {Name: "Terminal Capabilities", Format: Primitive, Class: ClassTerminal, MinLength: 3, MaxLength: 3},
	"9F34": {Name: "Cardholder Verification Method (CVM) Results", Format: Primitive, Class: ClassTerminal, MinLength: 3, MaxLength: 3},
	"9F36": {Name: "Application Transaction Counter (ATC)", Format: Primitive, Class: ClassICC, MinLength: 2, MaxLength: 2},
	"9F37": {Name: "Unpredictable Number", Format: Primitive, Class: ClassTerminal, MinLength: 4, MaxLength: 4},
	"A5":   {Name: "FCI Proprietary Template", Format: Constructed, Class: ClassICC},
	"BF0C": {Name: "FCI Issuer Discretionary Data", Format: Constructed, Class: ClassICC},
}
