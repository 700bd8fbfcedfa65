// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pass-sync services, the redirect callback page and the CLI.
//
// All Msg* constants are human-readable strings shown to the user or written
// into the callback page. Keeping them in one place keeps the wording the
// same on every surface.
package app

// Messages shown by the CLI for service errors.
const (
	// MsgNoBackupOrWrongPassword is shown when a backup can not be opened.
	// A wrong master password and a corrupted file are never told apart.
	MsgNoBackupOrWrongPassword = "no backup found or wrong password"

	// MsgNoBackup is shown when the provider holds no vault file yet.
	MsgNoBackup = "no backup found"

	// MsgNoSession is shown when an operation needs a signed-in provider.
	MsgNoSession = "not signed in, run login first"

	// MsgReauthorizationRequired is shown when the provider rejected the
	// stored credentials even after a refresh.
	MsgReauthorizationRequired = "provider session expired, please sign in again"

	// MsgProviderUnavailable is shown for network failures talking to the
	// provider.
	MsgProviderUnavailable = "provider is unreachable, try again later"

	// MsgAuthorizationTimedOut is shown when no redirect arrived in time.
	MsgAuthorizationTimedOut = "sign-in timed out"

	// MsgAuthorizationInProgress is shown when a second sign-in is started
	// for a provider that is still waiting for its redirect.
	MsgAuthorizationInProgress = "sign-in already in progress"

	// MsgAuthorizationCancelled is shown when sign-in was cancelled or the
	// provider denied access.
	MsgAuthorizationCancelled = "sign-in cancelled"

	// MsgInvalidPayload is shown when a vault document fails validation.
	MsgInvalidPayload = "vault document is invalid"

	MsgEmptyPassword = "master password must not be empty"

	MsgUnsupportedOperation = "operation is not supported by this provider"

	// MsgSecureStorageFailure is shown when the OS keyring can not be used.
	MsgSecureStorageFailure = "secure storage is unavailable"

	MsgClipboardUnavailable = "clipboard is unavailable"

	// MsgNoClipboardUtility is shown on Linux when none of xclip, xsel or
	// wl-clipboard is installed.
	MsgNoClipboardUtility = "no clipboard utility found, install xclip, xsel or wl-clipboard"

	// MsgInternalError is the fallback for errors without a dedicated
	// message.
	MsgInternalError = "internal error"
)

// Texts of the page served to the browser by the redirect listener.
const (
	PageTitleReceived          = "Authorization received"
	PageMessageReceived        = "You can close this window and return to the application."
	PageTitleSignInFailed      = "Sign-in failed"
	PageMessageDenied          = "The provider did not grant access. You can close this window."
	PageMessageInvalidRedirect = "This page expects a redirect from the provider's sign-in page."
)
