// Package jos decodes the Java Object Serialization Stream protocol,
// version 5, into a language-neutral value tree.
package jos
