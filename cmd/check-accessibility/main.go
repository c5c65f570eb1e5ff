package main

import "github.com/DemeWebsolutions/Phantom.ai/cmd/phantomlint"

func main() { phantomlint.Execute(phantomlint.NewAccessibilityCmd) }
