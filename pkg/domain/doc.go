// Package domain holds the business entities of the signup service. Types here
// carry no transport or persistence concerns so every layer can share them.
package domain
