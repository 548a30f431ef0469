// utils/firebase.go
package utils

import (
	"context"
	"log"

	"github.com/voueil/Herafona-website/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var firebaseAuthClient *auth.Client

// FirebaseInit initializes the Firebase App and Auth client.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	firebaseAuthClient = client
}

// GetFirebaseAuth returns the initialized Firebase Auth client.
func GetFirebaseAuth() *auth.Client {
	if firebaseAuthClient == nil {
		FirebaseInit()
	}
	return firebaseAuthClient
}
