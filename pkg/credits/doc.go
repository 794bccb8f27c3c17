// Package credits parses contributor credit strings and keeps them in an
// ordered, name-keyed collection.
//
// A credit string has the form "Name" or "Name <email>". Names are limited to
// ASCII letters, digits and spaces; anything else causes the entry to be
// ignored.
package credits
