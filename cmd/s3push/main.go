// Copyright 2017 uSwitch
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// loadEnvFile populates the environment from ENV_FILE (default .env) so
// flag Envar fallbacks can see it. Variables already set win and a
// missing file is ignored.
func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading %s: %s", path, err)
	}
	return nil
}

func main() {
	if err := loadEnvFile(); err != nil {
		log.Fatal(err.Error())
	}

	app := kingpin.New("s3push", "Upload a file to S3 using credentials from an assumed role.")
	cmd := &uploadCommand{}
	cmd.Bind(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	url, err := cmd.run()
	if err != nil {
		log.Fatalf("error: %s", err.Error())
	}

	fmt.Println(url)
}
