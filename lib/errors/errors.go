package errors

var (
	StorageRecordDoesNotExist  = NewError(100, "record does not exist")
	StorageRecordAlreadyExists = NewError(101, "record already exists")
	StorageCoreError           = NewError(102, "storage error")
	UnknownStorageScheme       = NewError(103, "unknown storage scheme")

	InvalidHolder   = NewError(110, "invalid holder identity")
	BalanceOverflow = NewError(111, "balance overflow")

	NoWeight        = NewError(120, "No tokens to vote")
	AlreadyVoted    = NewError(121, "Already voted")
	UnknownProposal = NewError(122, "unknown proposal")

	ContractNotFound        = NewError(130, "contract not found")
	ContractMethodNotFound  = NewError(131, "contract method not found")
	InvalidContractArgument = NewError(132, "invalid contract argument")
	InvalidSender           = NewError(133, "invalid sender address")

	InvalidConfig = NewError(140, "invalid configuration")
)
