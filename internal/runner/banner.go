package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
    _                            __            
   (_)___  _________  ___  _____/ /_____  _____
  / / __ \/ ___/ __ \/ _ \/ ___/ __/ __ \/ ___/
 / / / / (__  ) /_/ /  __/ /__/ /_/ /_/ / /    
/_/_/ /_/____/ .___/\___/\___/\__/\____/_/     
            /_/                                
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tbilingual punctuation auditor\n\n")
}
