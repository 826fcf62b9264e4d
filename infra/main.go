package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/userdata-api/infra/cloudrun"
	"github.com/GregMSThompson/userdata-api/infra/docker"
	"github.com/GregMSThompson/userdata-api/infra/firestore"
	"github.com/GregMSThompson/userdata-api/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// the deployed service stores users in firestore
		db, err := firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		svc, err := cloudrun.SetupCloudRun(ctx, prov, db, repo)
		if err != nil {
			return err
		}

		ctx.Export("serviceUrl", svc.Statuses.Index(pulumi.Int(0)).Url())
		return nil
	})
}
