package errors

// Rule names attached to QueryError.Rule. They identify the violated invariant for logging and
// tests; callers are expected to branch on the presence of an error, not on its rule.
const (
	RuleSyntaxError = "SyntaxError"
	RuleInternal    = "InternalError"

	RuleNoSchemaDefinition         = "NoSchemaDefinition"
	RuleDuplicateSchemaDefinition  = "DuplicateSchemaDefinition"
	RuleDuplicateRootOperationType = "DuplicateRootOperationType"

	RuleDuplicateDirectiveDefinition = "DuplicateDirectiveDefinition"
	RuleDuplicateDirectiveLocation   = "DuplicateDirectiveLocation"
	RuleDuplicateTypeDefinition      = "DuplicateTypeDefinition"
	RuleDuplicateFieldDefinition     = "DuplicateFieldDefinition"
	RuleDuplicateEnumValue           = "DuplicateEnumValue"
	RuleDuplicateArgument            = "DuplicateArgument"
	RuleDuplicateArgumentDefinition  = "DuplicateArgumentDefinition"
	RuleDuplicateReference           = "DuplicateReference"

	RuleNoMatchingDefinition = "NoMatchingDefinition"
	RuleKindMismatch         = "KindMismatch"

	RuleExecutableDefinitionInSchema     = "ExecutableDefinitionInSchema"
	RuleTypeSystemDefinitionInExecutable = "TypeSystemDefinitionInExecutable"
	RuleDuplicateFragmentDefinition      = "DuplicateFragmentDefinition"
	RuleDuplicateOperationDefinition     = "DuplicateOperationDefinition"
)
