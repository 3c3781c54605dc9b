package chatbot

import "strings"

// topic is a canned answer selected when any of its keywords appears.
type topic struct {
	name     string
	keywords phraseSet
	reply    string
}

// topics are checked in order; the first match wins.
var topics = []topic{
	{
		name:     "blood",
		keywords: newPhraseSet([]string{"blood", "donate", "donation", "donor", "bank"}),
		reply: `Hi there! 🩸 I'm so glad you're interested in blood donation - it's one of the most impactful ways to help save lives in our Tripura community!

We organize regular blood donation camps throughout Agartala and other areas. It's actually quite simple to get involved! All you need is to be in good health and bring a valid ID with you.

I'd love to help you find the next camp near you. Are you looking to donate soon, or would you like to know more about the donation process first?

You can also reach our team directly:
📞 Call us at +91 9774137698
📧 Email: ircstrp@gmail.com

What would be most helpful for you right now? 😊`,
	},
	{
		name:     "volunteer",
		keywords: newPhraseSet([]string{"volunteer", "join", "help", "work", "participate"}),
		reply: `That's amazing! 🤝 I'm so excited you want to volunteer with us - we always need passionate people like you who want to make a real difference in Tripura!

There are so many ways you can get involved depending on what interests you most. Are you drawn to helping during emergencies, or maybe you'd prefer working with community health programs? We have opportunities in:

• Disaster relief (helping families during floods, cyclones)
• Blood donation drives (organizing camps, helping donors)
• Community health programs (health awareness, first aid)
• Training programs (teaching life-saving skills)
• Awareness campaigns (spreading our humanitarian message)

The best part? You'll meet incredible people and gain skills that last a lifetime!

What type of volunteer work sounds most interesting to you? I can help you get started! You can reach our volunteer coordinator at 📞 +91 9774137698 or drop by our office at Red Cross Bhavan in Agartala.

Tell me, what motivated you to want to volunteer? 😊`,
	},
	{
		name:     "disaster",
		keywords: newPhraseSet([]string{"disaster", "emergency", "relief", "flood", "cyclone", "earthquake"}),
		reply: `I understand you're asking about disaster relief - this is such important work that we're deeply committed to here in Tripura. 🚨

Living in Tripura, we know how floods, cyclones, and other emergencies can affect our communities. That's why our Red Cross team is always ready to help families when disasters strike.

We provide immediate support like emergency response teams, relief materials (food, water, blankets), evacuation help when needed, medical aid, and long-term rehabilitation support to help families rebuild.

Are you currently dealing with an emergency situation, or are you interested in learning about disaster preparedness for your family or community?

**If this is an emergency:** Please call 108 or 102 for immediate help first, then reach us at 📞 +91 9774137698

**For preparedness info:** I'd love to share tips on how to prepare your family for emergencies!

How can I best help you with disaster-related information? 💙`,
	},
	{
		name:     "training",
		keywords: newPhraseSet([]string{"training", "course", "learn", "first aid", "skill"}),
		reply: `Oh, that's fantastic! 📚 I love that you're interested in learning life-saving skills - these trainings are some of my favorite programs because they truly empower people to help others!

We offer several really practical training programs that can make a huge difference in your community:

**First Aid certification** - Learn to handle medical emergencies (this one's super popular!)
**Disaster preparedness** - Know how to keep your family safe during emergencies
**Community health** - Become a health advocate in your neighborhood
**Volunteer orientation** - Perfect if you're thinking about joining our team
**Youth programs** - Great for students and young people

Which of these sounds most interesting to you? Are you looking to learn for personal knowledge, or maybe you're thinking about a career in healthcare or emergency services?

The trainings are really hands-on and practical - you'll leave feeling confident and prepared!

Give us a call at 📞 +91 9774137698 during office hours (Mon-Fri, 10 AM-5 PM) and we can chat about upcoming sessions. What's your main goal with the training? 😊`,
	},
	{
		name:     "contact",
		keywords: newPhraseSet([]string{"contact", "phone", "email", "address", "location"}),
		reply: `I'd be happy to help you get in touch with our team! 📞 We're always here to help and would love to hear from you.

Here's how you can reach us:

**Our office** is at Red Cross Bhavan in Agartala (Tripura 799001) - it's easy to find and we welcome visitors!

**Call us** at +91 9774137698 during office hours. Our team is really friendly and can help with any questions you have.

**Email us** at ircstrp@gmail.com if you prefer writing or have detailed questions.

**Office hours:** Monday through Friday, 10 AM to 5 PM (we're closed weekends, but emergencies are always handled!)

Is there something specific you'd like to discuss with our team? I might be able to help you right now, or I can let you know the best person to speak with when you call!

What brings you to Red Cross today? 😊`,
	},
	{
		name:     "membership",
		keywords: newPhraseSet([]string{"member", "membership", "join us", "become"}),
		reply: `👥 **Membership Information**

Become a member of the Indian Red Cross Society, Tripura Branch and support our humanitarian mission.

**Membership benefits:**
• Be part of a noble cause
• Participate in community service
• Access to training programs
• Networking opportunities

**To apply for membership:**
📞 +91 9774137698
📧 ircstrp@gmail.com
🏢 Visit our office in Agartala

*Together, we can make Tripura a more resilient community.*`,
	},
	{
		name:     "services",
		keywords: newPhraseSet([]string{"service", "program", "activity", "what do you do"}),
		reply: `🏥 **Our Services**

The Indian Red Cross Society, Tripura Branch provides comprehensive humanitarian services:

**Main Services:**
• 🩸 Blood donation and blood banks
• 🚨 Disaster relief and emergency response
• 🏥 Community health and first aid
• 📚 Training and capacity building
• 🤝 Volunteer programs
• 👥 Membership and awareness campaigns

**Contact us to learn more:**
📞 +91 9774137698
📧 ircstrp@gmail.com`,
	},
	{
		name:     "greeting",
		keywords: newPhraseSet([]string{"hello", "hi", "hey", "good morning", "good afternoon", "namaste"}),
		reply: `Hello there! 🙏 I'm Shiro, and I'm so happy you're here! Welcome to the Indian Red Cross Society - Tripura Branch family!

I absolutely love helping people learn about all the amazing humanitarian work we do right here in Tripura. Whether you're curious about getting involved, need our services, or just want to know more about what we do, I'm here for you!

I can chat with you about:
• **Blood donation** - such a meaningful way to save lives! 🩸
• **Volunteering** - join our incredible team of helpers 🤝
• **Emergency services** - we're here when disasters strike 🚨
• **Training programs** - learn life-saving skills 📚
• **Membership** - become part of our Red Cross family 👥
• **Any questions** about our work in the community!

What brings you to Red Cross today? Are you looking to help others, or is there something specific I can help you with? I'd love to hear your story! 😊

*If you need immediate help, our team is always available at 📞 +91 9774137698*`,
	},
}

const defaultReply = `Hi there! 😊 Thanks for chatting with me! I'm Shiro, your Red Cross Tripura assistant, and I'm here to help you with anything related to our humanitarian work in Tripura.

I'd love to chat about our Red Cross services, but I want to make sure I give you the best information possible! I'm specially trained to help with:

• **Blood donation programs** - want to save lives? 🩸
• **Volunteer opportunities** - join our amazing team! 🤝
• **Emergency and disaster relief** - we're here when you need us 🚨
• **Training programs** - learn valuable life skills 📚
• **Membership** - become part of our Red Cross family 👥
• **General questions** about our work in the community

Is there something specific about Red Cross Tripura you'd like to know? I'm here to help and would love to learn more about what interests you!

You can also reach our friendly team directly:
📞 +91 9774137698 | 📧 ircstrp@gmail.com
🏢 Red Cross Bhavan, Agartala

What would you like to explore first? 🌟`

// RedirectReply answers out-of-scope messages.
const RedirectReply = "Hi there! 😊 I'm Shiro, your Red Cross Tripura assistant. I'd love to help you with anything related to our humanitarian work! I can chat about blood donation, volunteering, disaster relief, training programs, or any of our community services. What would you like to know about Red Cross Tripura?"

// CannedReply returns the knowledge-base answer for msg and the topic it
// matched ("default" when none did).
func CannedReply(msg string) (reply, topicName string) {
	lower := strings.ToLower(msg)
	for _, t := range topics {
		if t.keywords.matches(lower) {
			return t.reply, t.name
		}
	}
	return defaultReply, "default"
}
