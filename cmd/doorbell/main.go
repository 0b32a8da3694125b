// Command doorbell is a minimal device simulator. It authenticates against
// the relay, asks for a presigned upload URL, and PUTs a local picture to
// the object store, imitating what the camera does on a button press or a
// picture task.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/netx"
	"github.com/hyperaware/doorbell-relay/internal/relay/pb"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "relay gRPC address")
	name := flag.String("name", "front-door", "device name")
	secret := flag.String("secret", "", "device secret")
	register := flag.Bool("register", false, "register the device before logging in")
	taskID := flag.String("task", "", "fulfill this picture task instead of ringing")
	file := flag.String("file", "", "path to the picture to upload")
	flag.Parse()

	if *file == "" {
		log.Fatal("a picture file is required (-file)")
	}

	if err := run(*addr, *name, *secret, *taskID, *file, *register); err != nil {
		log.Fatal(err)
	}
}

func run(addr, name, secret, taskID, file string, register bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	client := pb.NewDoorbellServiceClient(conn)

	if register {
		resp, err := client.RegisterDevice(ctx, &pb.RegisterDeviceRequest{Name: name, Secret: secret})
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Printf("registered device %s\n", resp.DeviceId)
	}

	login, err := client.Login(ctx, &pb.LoginRequest{Name: name, Secret: secret})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	authCtx := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, login.AccessToken)

	var key, url string
	if taskID != "" {
		resp, err := client.PresignTaskUpload(authCtx, &pb.PresignTaskUploadRequest{TaskId: taskID})
		if err != nil {
			return fmt.Errorf("presign task upload: %w", err)
		}
		key, url = resp.ObjectKey, resp.Url
	} else {
		resp, err := client.PresignRingUpload(authCtx, &pb.PresignRingUploadRequest{})
		if err != nil {
			return fmt.Errorf("presign ring upload: %w", err)
		}
		key, url = resp.ObjectKey, resp.Url
	}

	picture, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	if err := netx.UploadToPresignedURL(ctx, url, picture); err != nil {
		return err
	}

	fmt.Printf("uploaded %s as %s\n", file, key)
	return nil
}
