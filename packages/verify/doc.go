// Package verify provides fluent assertions that read like sentences:
//
//	verify.That(t, total).Is().GreaterThan(5)
//	verify.That(t, name).DoesNot().Contain("admin")
//	verify.That(t, user).AttributeNamed("password").IsNot().Empty()
//	verify.File(t, "out.json").Does().Exist().And().Is().Readable()
//
// A chain starts with That, File or Directory. Conjunctions such as Is,
// Does or IsNot set the modifier that decides whether the next assertion
// checks the affirmative or the negated form; neutral conjunctions such as
// And or Be only help the chain read well. The conjunction vocabulary is
// configurable through SetVocabulary or Configure.
//
// Calling an assertion before any conjunction is a misuse of the API and
// fails the test immediately with ErrMissingModifier.
package verify
